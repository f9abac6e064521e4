package main

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/asteppke/joy"
	"github.com/tdewolff/argp"
)

type Render struct {
	Width   float64 `short:"W" default:"300" desc:"Canvas width"`
	Height  float64 `short:"H" default:"300" desc:"Canvas height"`
	Frame   bool    `short:"f" desc:"Draw the canvas border and axes on the default canvas"`
	Output  string  `short:"o" desc:"Output file (default stdout)"`
	Pattern string  `index:"0" desc:"Pattern name"`
}

var patterns = map[string]func() *joy.Shape{
	"flower": func() *joy.Shape {
		return joy.Rectangle().Apply(joy.Cycle(nil))
	},
	"spiral": func() *joy.Shape {
		return joy.Rectangle(joy.Width(300), joy.Height(300)).Apply(joy.Cycle(&joy.CycleOptions{N: 72, Scale: 0.92}))
	},
	"rays": func() *joy.Shape {
		return joy.Line().Apply(joy.Repeat(36, joy.Rotate(10)))
	},
	"web": func() *joy.Shape {
		return joy.Line().Apply(joy.Repeat(18, joy.Rotate(10).Join(joy.Scale(0.9))))
	},
	"donut": func() *joy.Shape {
		return joy.Circle(joy.Radius(50)).Apply(joy.Repeat(20, joy.Translate(5, 0).Join(joy.Scale(0.98))))
	},
}

func main() {
	root := argp.NewCmd(&Render{}, "Render built-in joy patterns to SVG")
	root.Parse()
	root.PrintHelp()
}

func (cmd *Render) Run() error {
	if cmd.Pattern == "" {
		return argp.ShowUsage
	}
	pattern, ok := patterns[cmd.Pattern]
	if !ok {
		names := make([]string, 0, len(patterns))
		for name := range patterns {
			names = append(names, name)
		}
		sort.Strings(names)
		return fmt.Errorf("unknown pattern %q, available: %s", cmd.Pattern, strings.Join(names, ", "))
	}
	shape := pattern()

	var w io.Writer = os.Stdout
	if cmd.Output != "" && cmd.Output != "-" {
		f, err := os.Create(cmd.Output)
		if err != nil {
			return err
		}
		defer f.Close()
		w = f
	}
	if cmd.Frame {
		return joy.WriteShow(w, shape)
	}
	return joy.WriteSVG(w, &joy.Options{Width: cmd.Width, Height: cmd.Height}, shape)
}
