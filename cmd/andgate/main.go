// Command andgate trains a single-layer perceptron to act as an AND gate on
// jittered corner inputs, then checks the four canonical corners.
package main

import (
	"fmt"
	"math/rand"

	"github.com/sharnoff/supervised"
	"github.com/sharnoff/supervised/ffnet"
)

const samplesPerCorner = 50

func data() []supervised.Datum {
	rng := rand.New(rand.NewSource(1))
	corners := [][2]float64{{0, 0}, {1, 0}, {0, 1}, {1, 1}}

	var ds []supervised.Datum
	for _, c := range corners {
		for i := 0; i < samplesPerCorner; i++ {
			x := c[0] + (rng.Float64()-0.5)*0.1
			y := c[1] + (rng.Float64()-0.5)*0.1

			label := 0.0
			if x > 0.7 && y > 0.7 {
				label = 1.0
			}

			ds = append(ds, supervised.Datum{Inputs: []float64{x, y}, Targets: []float64{label}})
		}
	}

	return ds
}

func main() {
	ds, err := supervised.Data(data())
	if err != nil {
		fmt.Printf("building dataset failed: %s\n", err)
		return
	}

	fmt.Println("training AND gate perceptron...")
	model, err := ffnet.Train(ds, []int{2, 1}, ffnet.Config{
		Activation:   ffnet.Logistic,
		LearningRate: 0.5,
		Epochs:       20000,
		Seed:         1,
		Update: func(r ffnet.Result) {
			if r.Epoch%5000 == 0 {
				fmt.Printf("epoch %d: cost %.6f\n", r.Epoch, r.Cost)
			}
		},
	})
	if err != nil {
		fmt.Printf("training failed: %s\n", err)
		return
	}

	corners := [][]float64{{0, 0}, {1, 0}, {0, 1}, {1, 1}}
	for _, in := range corners {
		outs, err := model.Predict(in)
		if err != nil {
			fmt.Printf("predicting %v failed: %s\n", in, err)
			return
		}

		fmt.Printf("%v → %.4f\n", in, outs[0])
	}

	acc, err := supervised.Accuracy(model, ds, supervised.CorrectRound)
	if err != nil {
		fmt.Printf("evaluating failed: %s\n", err)
		return
	}
	fmt.Printf("training-set accuracy: %.1f%%\n", 100*acc)
}
