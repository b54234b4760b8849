package main

import (
	"errors"
	"math"
	"strconv"
	"strings"

	"github.com/seqsense/targetrange/run"
)

type console struct {
	game *run.Game
}

var errArgumentNumber = errors.New("invalid number of arguments")
var errInvalidCommand = errors.New("invalid command")

var consoleCommands = map[string]func(g *run.Game, args []float64) ([][]float64, error){
	"sensitivity": func(g *run.Game, args []float64) ([][]float64, error) {
		switch len(args) {
		case 0:
		case 1:
			if args[0] <= 0 {
				return nil, errors.New("sensitivity must be positive")
			}
			g.Dispatch(run.SensitivityChanged{Value: args[0]})
		default:
			return nil, errArgumentNumber
		}
		return [][]float64{{g.Look().Sensitivity()}}, nil
	},
	"orientation": func(g *run.Game, args []float64) ([][]float64, error) {
		switch len(args) {
		case 0:
		case 2:
			g.Dispatch(run.OrientationSet{Yaw: args[0], Pitch: args[1]})
		default:
			return nil, errArgumentNumber
		}
		o := g.Look().Orientation()
		return [][]float64{{o.Yaw, o.Pitch}}, nil
	},
	"score": func(g *run.Game, args []float64) ([][]float64, error) {
		if len(args) != 0 {
			return nil, errArgumentNumber
		}
		return [][]float64{{
			float64(g.Score()),
			float64(g.ElapsedTicks()),
			float64(g.FinalScore()),
		}}, nil
	},
	"targets": func(g *run.Game, args []float64) ([][]float64, error) {
		if len(args) != 0 {
			return nil, errArgumentNumber
		}
		var res [][]float64
		for _, t := range g.Targets() {
			res = append(res, []float64{
				float64(t.ID), float64(t.Kind),
				float64(t.Position[0]), float64(t.Position[1]), float64(t.Position[2]),
			})
		}
		return res, nil
	},
	"phase": func(g *run.Game, args []float64) ([][]float64, error) {
		if len(args) != 0 {
			return nil, errArgumentNumber
		}
		return [][]float64{{float64(g.Phase())}}, nil
	},
	"abort": func(g *run.Game, args []float64) ([][]float64, error) {
		if len(args) != 0 {
			return nil, errArgumentNumber
		}
		g.Dispatch(run.Abort{})
		return [][]float64{{float64(g.FinalScore())}}, nil
	},
}

func (c *console) Run(line string) (string, error) {
	args := strings.Fields(line)
	if len(args) == 0 {
		return "", nil
	}
	fn, ok := consoleCommands[args[0]]
	if !ok {
		return "", errInvalidCommand
	}
	var argsFloat []float64
	for i := 1; i < len(args); i++ {
		f, err := strconv.ParseFloat(args[i], 64)
		if err != nil {
			return "", err
		}
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return "", errors.New("non-finite argument")
		}
		argsFloat = append(argsFloat, f)
	}
	res, err := fn(c.game, argsFloat)
	if err != nil {
		return "", err
	}
	var resStr []string
	for _, vv := range res {
		var resLine []string
		for _, v := range vv {
			resLine = append(resLine, formatConsoleValue(v))
		}
		resStr = append(resStr, strings.Join(resLine, " "))
	}
	return strings.Join(resStr, "\n"), nil
}

// formatConsoleValue prints integers exactly and other values with six
// significant digits, enough for sensitivities in the 1e-4 range.
func formatConsoleValue(v float64) string {
	if v == math.Trunc(v) && math.Abs(v) < 1e15 {
		return strconv.FormatInt(int64(v), 10)
	}
	return strconv.FormatFloat(v, 'g', 6, 64)
}
