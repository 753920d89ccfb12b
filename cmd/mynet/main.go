// Package main provides the mynet CLI.
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/born-ml/mynet/internal/autodiff"
	"github.com/born-ml/mynet/internal/gradcheck"
	"github.com/born-ml/mynet/internal/nn"
	"github.com/born-ml/mynet/internal/optim"
	"github.com/born-ml/mynet/internal/serialization"
	"github.com/born-ml/mynet/internal/train"
)

const version = "v0.1.0"

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, "mynet:", err)
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	if len(args) == 0 {
		usage(stdout)
		return nil
	}

	switch args[0] {
	case "version":
		fmt.Fprintf(stdout, "mynet %s\n", version)
		return nil
	case "fit":
		return runFit(args[1:], stdout)
	case "xor":
		return runXOR(args[1:], stdout, stderr)
	case "predict":
		return runPredict(args[1:], stdout)
	case "gradcheck":
		return runGradcheck(args[1:], stdout)
	case "help", "-h", "--help":
		usage(stdout)
		return nil
	default:
		return errors.Errorf("unknown command %q", args[0])
	}
}

func usage(w io.Writer) {
	fmt.Fprintln(w, "mynet - scalar autodiff neural networks")
	fmt.Fprintf(w, "Version: %s\n\n", version)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  version    Show version")
	fmt.Fprintln(w, "  fit        Fit w in (1 - w*2)^2 with gradient descent")
	fmt.Fprintln(w, "  xor        Train an MLP on XOR")
	fmt.Fprintln(w, "  predict    Run a saved MLP checkpoint on the given inputs")
	fmt.Fprintln(w, "  gradcheck  Compare operator gradients with finite differences")
}

// runFit drives the engine directly, without nn or train.
func runFit(args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("fit", flag.ContinueOnError)
	steps := fs.Int("steps", 20, "Number of gradient steps")
	lr := fs.Float64("lr", 0.1, "Learning rate")
	if err := fs.Parse(args); err != nil {
		return errors.Wrap(err, "fit")
	}
	if *steps <= 0 {
		return errors.Errorf("fit: steps must be positive, got %d", *steps)
	}

	w := autodiff.New(0)
	x := autodiff.New(2)
	for step := 1; step <= *steps; step++ {
		w.ZeroGrad()
		loss := autodiff.Sub(autodiff.Scalar(1), w.Mul(x)).Pow(autodiff.Scalar(2))
		autodiff.Backward(loss)
		w.SetData(w.Data() - *lr*w.Grad())

		fmt.Fprintf(stdout, "step %3d  loss %.6e  w %.6f\n", step, loss.Data(), w.Data())
	}
	return nil
}

func runXOR(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("xor", flag.ContinueOnError)
	epochs := fs.Int("epochs", 1000, "Number of training epochs")
	hidden := fs.Int("hidden", 8, "Hidden layer width")
	optimizer := fs.String("optim", "adam", "Optimizer: adam or sgd")
	lr := fs.Float64("lr", 0.05, "Learning rate")
	seed := fs.Uint64("seed", 1, "Random seed for weight initialization")
	verbose := fs.Bool("v", false, "Log training progress to stderr")
	save := fs.String("save", "", "Write the trained model to this checkpoint file")
	if err := fs.Parse(args); err != nil {
		return errors.Wrap(err, "xor")
	}

	sizes := []int{2, *hidden, 1}
	model, err := nn.NewMLP(sizes, nn.ActivationTanh, rand.NewPCG(*seed, *seed))
	if err != nil {
		return errors.Wrap(err, "xor: build model")
	}

	var opt optim.Optimizer
	switch *optimizer {
	case "adam":
		opt = optim.NewAdam(model.Parameters(), optim.AdamConfig{LR: *lr})
	case "sgd":
		opt = optim.NewSGD(model.Parameters(), optim.SGDConfig{LR: *lr, Momentum: 0.9})
	default:
		return errors.Errorf("xor: unknown optimizer %q", *optimizer)
	}

	var logger *slog.Logger
	if *verbose {
		logger = slog.New(slog.NewTextHandler(stderr, nil))
	}

	trainer, err := train.New(model, nn.NewMSELoss(), opt, train.Config{
		Epochs:   *epochs,
		LogEvery: max(*epochs/10, 1),
	}, logger)
	if err != nil {
		return errors.Wrap(err, "xor")
	}

	hist, err := trainer.Fit(xorData)
	if err != nil {
		return errors.Wrap(err, "xor")
	}

	fmt.Fprintf(stdout, "final loss %.6f after %d epochs\n", hist.Final(), len(hist.Losses))
	for _, s := range xorData {
		fmt.Fprintf(stdout, "%v -> %.4f (want %v)\n", s.Inputs, model.Predict(s.Inputs)[0], s.Targets[0])
	}

	if *save != "" {
		header := serialization.Header{
			ModelType: "MLP",
			Metadata: map[string]string{
				"sizes":      formatSizes(sizes),
				"activation": nn.ActivationTanh,
			},
			CheckpointMeta: &serialization.CheckpointMeta{
				Epoch:           len(hist.Losses),
				Loss:            hist.Final(),
				OptimizerType:   *optimizer,
				OptimizerConfig: map[string]float64{"lr": opt.GetLR()},
			},
		}
		if err := serialization.WriteFile(*save, model.StateDict(), header); err != nil {
			return errors.Wrap(err, "xor: save")
		}
		fmt.Fprintf(stdout, "saved %d parameters to %s\n", len(model.Parameters()), *save)
	}
	return nil
}

// runPredict rebuilds an MLP from a checkpoint written by xor -save.
func runPredict(args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("predict", flag.ContinueOnError)
	path := fs.String("model", "", "Checkpoint file to load")
	if err := fs.Parse(args); err != nil {
		return errors.Wrap(err, "predict")
	}
	if *path == "" {
		return errors.New("predict: -model is required")
	}

	state, header, err := serialization.ReadFile(*path)
	if err != nil {
		return errors.Wrap(err, "predict")
	}
	if header.ModelType != "MLP" {
		return errors.Errorf("predict: unsupported model type %q", header.ModelType)
	}

	sizes, err := parseSizes(header.Metadata["sizes"])
	if err != nil {
		return errors.Wrap(err, "predict")
	}
	model, err := nn.NewMLP(sizes, header.Metadata["activation"], nil)
	if err != nil {
		return errors.Wrap(err, "predict")
	}
	if err := model.LoadStateDict(state); err != nil {
		return errors.Wrap(err, "predict")
	}

	inputs := make([]float64, fs.NArg())
	for i, arg := range fs.Args() {
		if inputs[i], err = strconv.ParseFloat(arg, 64); err != nil {
			return errors.Wrapf(err, "predict: input %d", i)
		}
	}
	if len(inputs) != sizes[0] {
		return errors.Errorf("predict: model takes %d inputs, got %d", sizes[0], len(inputs))
	}

	for _, y := range model.Predict(inputs) {
		fmt.Fprintf(stdout, "%.6f\n", y)
	}
	return nil
}

// gradchecks are the operators verified by the gradcheck command, evaluated
// at x = 0.7, y = 1.3.
var gradchecks = []struct {
	name string
	f    gradcheck.Func
}{
	{"add", func(xs []*autodiff.Value) *autodiff.Value { return xs[0].Add(xs[1]) }},
	{"mul", func(xs []*autodiff.Value) *autodiff.Value { return xs[0].Mul(xs[1]) }},
	{"pow", func(xs []*autodiff.Value) *autodiff.Value { return xs[0].Pow(xs[1]) }},
	{"relu", func(xs []*autodiff.Value) *autodiff.Value { return xs[0].Sub(xs[1]).ReLU() }},
	{"log", func(xs []*autodiff.Value) *autodiff.Value { return xs[0].Mul(xs[1]).Log() }},
	{"tanh", func(xs []*autodiff.Value) *autodiff.Value { return xs[0].Mul(xs[1]).Tanh() }},
	{"div", func(xs []*autodiff.Value) *autodiff.Value { return xs[0].Div(xs[1]) }},
	{"exp", func(xs []*autodiff.Value) *autodiff.Value { return xs[0].Mul(xs[1]).Exp() }},
	{"root", func(xs []*autodiff.Value) *autodiff.Value { return xs[1].Root(autodiff.Scalar(3)).Mul(xs[0]) }},
}

func runGradcheck(args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("gradcheck", flag.ContinueOnError)
	tol := fs.Float64("tol", gradcheck.DefaultTolerance, "Maximum absolute gradient difference")
	if err := fs.Parse(args); err != nil {
		return errors.Wrap(err, "gradcheck")
	}

	at := []float64{0.7, 1.3}
	var failed int
	for _, c := range gradchecks {
		res, err := gradcheck.Check(c.f, at, *tol)
		status := "ok"
		if err != nil {
			status = err.Error()
			failed++
		}
		fmt.Fprintf(stdout, "%-5s max diff %.2e  %s\n", c.name, res.MaxAbsDiff, status)
	}
	if failed > 0 {
		return errors.Errorf("gradcheck: %d of %d operators failed", failed, len(gradchecks))
	}
	return nil
}

func formatSizes(sizes []int) string {
	parts := make([]string, len(sizes))
	for i, s := range sizes {
		parts[i] = strconv.Itoa(s)
	}
	return strings.Join(parts, ",")
}

func parseSizes(s string) ([]int, error) {
	if s == "" {
		return nil, errors.New("checkpoint has no layer sizes")
	}
	parts := strings.Split(s, ",")
	sizes := make([]int, len(parts))
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			return nil, errors.Wrapf(err, "layer size %d", i)
		}
		sizes[i] = n
	}
	return sizes, nil
}

var xorData = []train.Sample{
	{Inputs: []float64{0, 0}, Targets: []float64{0}},
	{Inputs: []float64{0, 1}, Targets: []float64{1}},
	{Inputs: []float64{1, 0}, Targets: []float64{1}},
	{Inputs: []float64{1, 1}, Targets: []float64{0}},
}
