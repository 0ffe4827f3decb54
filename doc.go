// Package supervised provides a small toolkit for supervised learning with a
// uniform train/predict contract over two model families: kernelized margin
// classifiers and gradient-trained feed-forward networks.
//
// The root package holds the pieces shared by both families: the Dataset type
// and its validation, the Model and Trainer interfaces, the error types, and
// TrainAll for running several independent trainers across a worker pool.
//
// The model families live in their own subpackages. Training a margin
// classifier looks like:
//
//		ds, err := supervised.DataFrom(inputs, targets)
//		// handle err
//		model, err := svm.Train(ds, svm.Config{Kernel: kernel.HyperTan()})
//
// and a feed-forward network:
//
//		model, err := ffnet.Train(ds, []int{2, 1}, ffnet.Config{
//			Activation:   ffnet.Logistic,
//			LearningRate: 0.3,
//			Epochs:       5000,
//			Seed:         1,
//		})
//
// Both return a value satisfying the Model interface. Models are immutable and
// safe for concurrent prediction; see Model for the exact guarantees.
//
// The numeric substrate -- checked vector and matrix arithmetic over gonum --
// is in the subpackage "tensor", kernels in "kernel", and network cost
// functions in "loss".
//
// Trainers can fail without being useless: ErrDidNotConverge and
// ErrNonFiniteGradient are both returned alongside a usable model, holding the
// best (respectively last known-good) parameters. Only ErrEmptyDataset and
// shape errors withhold the model entirely.
package supervised
