// Package train runs the training loop for scalar autodiff models.
//
// A training step is one atomic unit:
//
//	ZeroGrad → Forward + Loss → autodiff.Backward → Optimizer.Step
//
// The graph built by the forward pass is discarded after each step, so steps
// must never overlap. Trainer is not safe for concurrent use.
package train

import (
	"log/slog"
	"math/rand/v2"

	"github.com/pkg/errors"

	"github.com/born-ml/mynet/internal/autodiff"
	"github.com/born-ml/mynet/internal/nn"
	"github.com/born-ml/mynet/internal/optim"
	"github.com/born-ml/mynet/internal/parallel"
)

// Sample is one training example.
type Sample struct {
	Inputs  []float64
	Targets []float64
}

// Config controls the training loop.
type Config struct {
	Epochs     int     // Passes over the dataset (default: 100)
	BatchSize  int     // Samples per optimizer step; 0 means the whole dataset
	LogEvery   int     // Log every N epochs; 0 logs only the first and last epoch
	TargetLoss float64 // Stop once the epoch loss is at or below this; 0 disables
	Shuffle    bool    // Shuffle sample order every epoch
	Seed       uint64  // Seed for shuffling

	// Parallel spreads Evaluate over goroutines. The zero value evaluates
	// sequentially. Training steps always run on the calling goroutine.
	Parallel parallel.Config
}

// DefaultConfig returns a full-batch configuration for 100 epochs.
func DefaultConfig() Config {
	return Config{Epochs: 100}
}

// Validate reports configuration errors.
func (c Config) Validate() error {
	if c.Epochs <= 0 {
		return errors.Errorf("train: epochs must be positive, got %d", c.Epochs)
	}
	if c.BatchSize < 0 {
		return errors.Errorf("train: batch size must not be negative, got %d", c.BatchSize)
	}
	if c.LogEvery < 0 {
		return errors.Errorf("train: log interval must not be negative, got %d", c.LogEvery)
	}
	if c.TargetLoss < 0 {
		return errors.Errorf("train: target loss must not be negative, got %g", c.TargetLoss)
	}
	if c.Parallel.NumWorkers < 0 {
		return errors.Errorf("train: worker count must not be negative, got %d", c.Parallel.NumWorkers)
	}
	return nil
}

// History records the outcome of Fit.
type History struct {
	Losses  []float64 // Mean sample loss per completed epoch
	Stopped bool      // True when TargetLoss ended training early
}

// Final returns the loss of the last completed epoch.
func (h History) Final() float64 {
	if len(h.Losses) == 0 {
		return 0
	}
	return h.Losses[len(h.Losses)-1]
}

// Trainer fits a module to a dataset.
type Trainer struct {
	model     nn.Module
	loss      nn.Loss
	optimizer optim.Optimizer
	config    Config
	logger    *slog.Logger
}

// New creates a Trainer. A nil logger discards all output.
func New(model nn.Module, loss nn.Loss, optimizer optim.Optimizer, config Config, logger *slog.Logger) (*Trainer, error) {
	if model == nil || loss == nil || optimizer == nil {
		return nil, errors.New("train: model, loss and optimizer are required")
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	return &Trainer{
		model:     model,
		loss:      loss,
		optimizer: optimizer,
		config:    config,
		logger:    logger,
	}, nil
}

// Step performs one optimizer update on batch and returns the mean loss
// before the update.
func (t *Trainer) Step(batch []Sample) float64 {
	t.optimizer.ZeroGrad()

	losses := make([]*autodiff.Value, len(batch))
	for i, s := range batch {
		out := t.model.Forward(autodiff.Values(s.Inputs...))
		losses[i] = t.loss.Forward(out, s.Targets)
	}
	loss := autodiff.Mean(losses...)

	autodiff.Backward(loss)
	t.optimizer.Step()

	return loss.Data()
}

// Evaluate returns the mean loss over data without touching gradients.
func (t *Trainer) Evaluate(data []Sample) float64 {
	if len(data) == 0 {
		return 0
	}
	total := parallel.Sum(len(data), func(i int) float64 {
		out := t.model.Forward(autodiff.Values(data[i].Inputs...))
		return t.loss.Forward(out, data[i].Targets).Data()
	}, t.config.Parallel)
	return total / float64(len(data))
}

// Fit trains on data for the configured number of epochs.
//
// Returns an error if data is empty.
func (t *Trainer) Fit(data []Sample) (History, error) {
	if len(data) == 0 {
		return History{}, errors.New("train: empty dataset")
	}

	batchSize := t.config.BatchSize
	if batchSize == 0 || batchSize > len(data) {
		batchSize = len(data)
	}

	order := make([]Sample, len(data))
	copy(order, data)
	rng := rand.New(rand.NewPCG(t.config.Seed, t.config.Seed^0x9e3779b97f4a7c15))

	var hist History
	for epoch := 1; epoch <= t.config.Epochs; epoch++ {
		if t.config.Shuffle {
			rng.Shuffle(len(order), func(i, j int) { order[i], order[j] = order[j], order[i] })
		}

		var total float64
		for start := 0; start < len(order); start += batchSize {
			batch := order[start:min(start+batchSize, len(order))]
			total += t.Step(batch) * float64(len(batch))
		}
		epochLoss := total / float64(len(order))
		hist.Losses = append(hist.Losses, epochLoss)

		if t.shouldLog(epoch) {
			t.logger.Info("epoch complete",
				"epoch", epoch,
				"loss", epochLoss,
				"grad_norm", optim.GradNorm(t.model.Parameters()),
				"lr", t.optimizer.GetLR(),
			)
		}

		if t.config.TargetLoss > 0 && epochLoss <= t.config.TargetLoss {
			hist.Stopped = true
			t.logger.Info("target loss reached", "epoch", epoch, "loss", epochLoss)
			break
		}
	}

	return hist, nil
}

func (t *Trainer) shouldLog(epoch int) bool {
	if epoch == 1 || epoch == t.config.Epochs {
		return true
	}
	return t.config.LogEvery > 0 && epoch%t.config.LogEvery == 0
}
