package game

import (
	"slices"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/exp/maps"
)

// Layout is the static part of a game: walls and the initial placement of
// food, capsules and agents. It is shared by every state of a game and never
// modified after parsing.
type Layout struct {
	Name        string
	Width       int
	Height      int
	walls       grid
	food        grid
	Capsules    []Position
	PacmanStart Position
	GhostStarts []Position
}

// ParseLayout reads a layout drawn with '%' walls, '.' food, 'o' capsules,
// 'P' pacman, 'G' ghosts and ' ' empty cells. The first line is the top row.
func ParseLayout(name, text string) (*Layout, error) {
	lines := strings.Split(strings.Trim(text, "\n"), "\n")
	if len(lines) == 0 || len(lines[0]) == 0 {
		return nil, errors.Errorf("layout %q is empty", name)
	}

	width := len(lines[0])
	l := &Layout{
		Name:   name,
		Width:  width,
		Height: len(lines),
		walls:  newGrid(width, len(lines)),
		food:   newGrid(width, len(lines)),
	}

	pacmen := 0
	for y, line := range lines {
		if len(line) != width {
			return nil, errors.Errorf("layout %q row %d has width %d, want %d", name, y, len(line), width)
		}
		for x, c := range line {
			p := Position{X: x, Y: y}
			switch c {
			case '%':
				l.walls.set(p, true)
			case '.':
				l.food.set(p, true)
			case 'o':
				l.Capsules = append(l.Capsules, p)
			case 'P':
				l.PacmanStart = p
				pacmen++
			case 'G':
				l.GhostStarts = append(l.GhostStarts, p)
			case ' ':
			default:
				return nil, errors.Errorf("layout %q has unknown cell %q at %s", name, c, p)
			}
		}
	}
	if pacmen != 1 {
		return nil, errors.Errorf("layout %q has %d pacman starts, want 1", name, pacmen)
	}
	return l, nil
}

// IsWall reports whether p is a wall. Cells outside the layout are walls.
func (l *Layout) IsWall(p Position) bool {
	if !l.walls.inside(p) {
		return true
	}
	return l.walls.get(p)
}

// NumGhosts returns the number of ghost starts in the layout.
func (l *Layout) NumGhosts() int {
	return len(l.GhostStarts)
}

// Food returns the initial food positions in row-major order.
func (l *Layout) Food() []Position {
	return l.food.list()
}

// Neighbors returns the open cells next to p with the direction leading to
// each, in the order of Directions.
func (l *Layout) Neighbors(p Position) ([]Position, []Direction) {
	positions := make([]Position, 0, len(Directions))
	directions := make([]Direction, 0, len(Directions))
	for _, d := range Directions {
		next := p.Add(d.Vector())
		if !l.IsWall(next) {
			positions = append(positions, next)
			directions = append(directions, d)
		}
	}
	return positions, directions
}

// GetLayout parses the built-in layout registered under name.
func GetLayout(name string) (*Layout, error) {
	text, ok := layouts[name]
	if !ok {
		return nil, errors.Errorf("unknown layout %q (want one of %s)", name, strings.Join(LayoutNames(), ", "))
	}
	return ParseLayout(name, text)
}

// LayoutNames returns the names of the built-in layouts in sorted order.
func LayoutNames() []string {
	names := maps.Keys(layouts)
	slices.Sort(names)
	return names
}

// MustGetLayout is like GetLayout but panics on error.
func MustGetLayout(name string) *Layout {
	l, err := GetLayout(name)
	if err != nil {
		panic(err)
	}
	return l
}

// Built-in layouts. Mazes hold a single food dot used as the search goal.
var layouts = map[string]string{
	"tinyMaze": `
%%%%%%%
%    P%
% %%% %
%  %  %
%% %% %
%.    %
%%%%%%%`,
	"smallMaze": `
%%%%%%%%%%%%%%%%%%%%%%
%       %      %    P%
% %%%%% % %%%% % %%%%%
% %   % %    % %     %
% % % % %%%% % %%%%% %
% % %   %    %     % %
% % %%%%% %%%%%%%% % %
%.%                  %
%%%%%%%%%%%%%%%%%%%%%%`,
	"openMaze": `
%%%%%%%%%%%%%%%%
%P             %
%   %%%%%%%%   %
%          %   %
%%%%%%%%%  %   %
%              %
%   %%%%%%%%%% %
%.             %
%%%%%%%%%%%%%%%%`,
	"blockedMaze": `
%%%%%%%
%P  %.%
%%%%%%%`,
	"testClassic": `
%%%%%%%%%
%.P   G.%
% %%%%% %
%o     .%
%%%%%%%%%`,
	"trappedClassic": `
%%%%%%%%
%   P G%
%%%%%%.%
%%%%%%%%`,
	"smallClassic": `
%%%%%%%%%%%%%%%%%%%%
%......%G  G%......%
%.%%...%%  %%...%%.%
%.%o.%........%.o%.%
%.%%.%.%%%%%%.%.%%.%
%........P.........%
%%%%%%%%%%%%%%%%%%%%`,
}
