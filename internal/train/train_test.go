package train_test

import (
	"bytes"
	"log/slog"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/mynet/internal/autodiff"
	"github.com/born-ml/mynet/internal/nn"
	"github.com/born-ml/mynet/internal/optim"
	"github.com/born-ml/mynet/internal/parallel"
	"github.com/born-ml/mynet/internal/train"
)

// scale is prediction = w * x with no bias.
type scale struct {
	w *nn.Parameter
}

func (s *scale) Forward(inputs []*autodiff.Value) []*autodiff.Value {
	return []*autodiff.Value{s.w.Value().Mul(inputs[0])}
}

func (s *scale) Parameters() []*nn.Parameter {
	return []*nn.Parameter{s.w}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		config  train.Config
		wantErr string
	}{
		{"default", train.DefaultConfig(), ""},
		{"zero epochs", train.Config{}, "train: epochs must be positive, got 0"},
		{"negative batch", train.Config{Epochs: 1, BatchSize: -1}, "train: batch size must not be negative, got -1"},
		{"negative log interval", train.Config{Epochs: 1, LogEvery: -2}, "train: log interval must not be negative, got -2"},
		{"negative target", train.Config{Epochs: 1, TargetLoss: -0.5}, "train: target loss must not be negative, got -0.5"},
		{"negative workers", train.Config{Epochs: 1, Parallel: parallel.Config{NumWorkers: -1}}, "train: worker count must not be negative, got -1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.EqualError(t, err, tt.wantErr)
		})
	}
}

func TestNew_RequiresCollaborators(t *testing.T) {
	_, err := train.New(nil, nn.NewMSELoss(), optim.NewSGD(nil, optim.SGDConfig{}), train.DefaultConfig(), nil)
	assert.Error(t, err)

	model := &scale{w: nn.NewParameter("w", 0)}
	_, err = train.New(model, nn.NewMSELoss(), optim.NewSGD(nil, optim.SGDConfig{}), train.Config{}, nil)
	assert.ErrorContains(t, err, "epochs must be positive")
}

// TestStep_SingleWeightConvergence is the w*x scenario with x = 2, target 1.
func TestStep_SingleWeightConvergence(t *testing.T) {
	model := &scale{w: nn.NewParameter("w", 0)}
	sgd := optim.NewSGD(model.Parameters(), optim.SGDConfig{LR: 0.1})
	trainer, err := train.New(model, nn.NewMSELoss(), sgd, train.DefaultConfig(), nil)
	require.NoError(t, err)

	batch := []train.Sample{{Inputs: []float64{2}, Targets: []float64{1}}}

	prev := trainer.Step(batch)
	assert.Equal(t, 1.0, prev)
	for range 30 {
		loss := trainer.Step(batch)
		if prev > 1e-20 {
			assert.Less(t, loss, prev)
		}
		prev = loss
	}

	assert.InDelta(t, 0.5, model.w.Data(), 1e-6)
	assert.InDelta(t, 0.0, trainer.Evaluate(batch), 1e-10)
}

func TestFit_EmptyDataset(t *testing.T) {
	model := &scale{w: nn.NewParameter("w", 0)}
	trainer, err := train.New(model, nn.NewMSELoss(), optim.NewSGD(model.Parameters(), optim.SGDConfig{}), train.DefaultConfig(), nil)
	require.NoError(t, err)

	_, err = trainer.Fit(nil)
	assert.EqualError(t, err, "train: empty dataset")
}

func TestFit_LinearRegression(t *testing.T) {
	// y = 3x - 1
	var data []train.Sample
	for _, x := range []float64{-1, -0.5, 0, 0.5, 1} {
		data = append(data, train.Sample{Inputs: []float64{x}, Targets: []float64{3*x - 1}})
	}

	model := nn.NewModel(nn.NewNamedLayer("lin", 1, 1, nn.Constant(0)))
	sgd := optim.NewSGD(model.Parameters(), optim.SGDConfig{LR: 0.1, Momentum: 0.5})

	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, nil))

	trainer, err := train.New(model, nn.NewMSELoss(), sgd, train.Config{
		Epochs:     500,
		BatchSize:  2,
		LogEvery:   50,
		TargetLoss: 1e-8,
		Shuffle:    true,
		Seed:       3,
	}, logger)
	require.NoError(t, err)

	hist, err := trainer.Fit(data)
	require.NoError(t, err)

	assert.True(t, hist.Stopped)
	assert.LessOrEqual(t, hist.Final(), 1e-8)
	assert.Less(t, len(hist.Losses), 500)

	params := model.Parameters()
	assert.InDelta(t, 3.0, params[0].Data(), 1e-3)
	assert.InDelta(t, -1.0, params[1].Data(), 1e-3)

	assert.Contains(t, logs.String(), "epoch complete")
	assert.Contains(t, logs.String(), "target loss reached")
}

func TestFit_XOR(t *testing.T) {
	data := []train.Sample{
		{Inputs: []float64{0, 0}, Targets: []float64{0}},
		{Inputs: []float64{0, 1}, Targets: []float64{1}},
		{Inputs: []float64{1, 0}, Targets: []float64{1}},
		{Inputs: []float64{1, 1}, Targets: []float64{0}},
	}

	model, err := nn.NewMLP([]int{2, 8, 1}, nn.ActivationTanh, rand.NewPCG(1, 1))
	require.NoError(t, err)
	adam := optim.NewAdam(model.Parameters(), optim.AdamConfig{LR: 0.05})

	trainer, err := train.New(model, nn.NewMSELoss(), adam, train.Config{Epochs: 1000}, nil)
	require.NoError(t, err)

	hist, err := trainer.Fit(data)
	require.NoError(t, err)

	require.Len(t, hist.Losses, 1000)
	assert.False(t, hist.Stopped)
	assert.Less(t, hist.Final(), hist.Losses[0])
	assert.Less(t, hist.Final(), 0.1)
}

func TestEvaluate_ParallelMatchesSequential(t *testing.T) {
	var data []train.Sample
	for i := range 40 {
		x := float64(i) / 10
		data = append(data, train.Sample{Inputs: []float64{x, -x}, Targets: []float64{x * x}})
	}

	model, err := nn.NewMLP([]int{2, 4, 1}, nn.ActivationReLU, rand.NewPCG(2, 2))
	require.NoError(t, err)
	sgd := optim.NewSGD(model.Parameters(), optim.SGDConfig{})

	seq, err := train.New(model, nn.NewMSELoss(), sgd, train.DefaultConfig(), nil)
	require.NoError(t, err)

	config := train.DefaultConfig()
	config.Parallel = parallel.Config{Enabled: true, NumWorkers: 4, MinChunkSize: 1}
	par, err := train.New(model, nn.NewMSELoss(), sgd, config, nil)
	require.NoError(t, err)

	assert.Equal(t, seq.Evaluate(data), par.Evaluate(data))
	for _, p := range model.Parameters() {
		assert.False(t, p.HasGrad(), p.Name())
	}
}

func TestHistory_FinalEmpty(t *testing.T) {
	assert.Zero(t, train.History{}.Final())
}
