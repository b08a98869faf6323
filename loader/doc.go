// Package loader turns maze descriptors and coordinate text into the values
// the maze, astar and prize packages consume.
//
// A descriptor names one to four dimensions; missing trailing dimensions are
// padded with empty labels and carry only the value 0. Coordinates are
// written as tuples, "(2, 3)", and padded with zeros to four components.
//
// Example:
//
//	d, err := loader.LoadFile("maze.yaml")
//	if err != nil { ... }
//	m, err := d.Maze()
//	from, to, err := d.Endpoints()
//	prizes, err := d.PrizeList()
package loader
