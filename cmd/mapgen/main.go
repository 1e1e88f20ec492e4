package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/sjiamnocna/gomaze/internal/maps"
	"github.com/sjiamnocna/gomaze/internal/mazegen"
)

const separator = "---"

func main() {
	width := flag.Int("width", 41, "Width of the maze (minimum 3)")
	height := flag.Int("height", 21, "Height of the maze (minimum 3)")
	count := flag.Int("count", 1, "Number of mazes to generate")
	noGoal := flag.Bool("no-goal", false, "Do not place a goal")
	output := flag.String("output", "", "Output file path (default stdout)")
	check := flag.String("check", "", "Report connectivity of an existing layout instead of generating")

	flag.Parse()

	if *check != "" {
		grid, err := maps.Load(*check)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading layout: %v\n", err)
			os.Exit(1)
		}
		fmt.Println(Analyze(grid))
		return
	}

	if *count < 1 {
		fmt.Fprintf(os.Stderr, "Count must be at least 1\n")
		os.Exit(1)
	}

	out := io.Writer(os.Stdout)
	if *output != "" {
		file, err := os.Create(*output)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating file: %v\n", err)
			os.Exit(1)
		}
		defer file.Close()
		out = file
	}

	reports, err := writeMazes(out, *width, *height, *count, !*noGoal)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	for i, r := range reports {
		fmt.Fprintf(os.Stderr, "maze %d: %s\n", i+1, r)
	}
}

// writeMazes generates count mazes and writes them to w separated by "---".
func writeMazes(w io.Writer, width, height, count int, goal bool) ([]Report, error) {
	reports := make([]Report, 0, count)
	for i := 0; i < count; i++ {
		grid, err := maps.NewGrid(width, height)
		if err != nil {
			return nil, err
		}
		mazegen.Generate(grid, mazegen.Options{Goal: goal})

		if i > 0 {
			if _, err := fmt.Fprintln(w, separator); err != nil {
				return nil, err
			}
		}
		if _, err := io.WriteString(w, grid.String()); err != nil {
			return nil, err
		}
		reports = append(reports, Analyze(grid))
	}
	return reports, nil
}
