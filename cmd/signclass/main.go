// Command signclass trains a hyperbolic-tangent kernel classifier to learn the
// sign function over a small range of integers, then checks every training
// point.
package main

import (
	"fmt"

	"github.com/sharnoff/supervised"
	"github.com/sharnoff/supervised/kernel"
	"github.com/sharnoff/supervised/svm"
)

func data() []supervised.Datum {
	var ds []supervised.Datum
	for x := -1000; x <= 900; x += 100 {
		label := -1.0
		if x > 0 {
			label = 1.0
		}

		ds = append(ds, supervised.Datum{Inputs: []float64{float64(x)}, Targets: []float64{label}})
	}

	return ds
}

func main() {
	ds, err := supervised.Data(data())
	if err != nil {
		fmt.Printf("building dataset failed: %s\n", err)
		return
	}

	fmt.Println("training sign classifier...")
	model, err := svm.Train(ds, svm.Config{
		Kernel: kernel.HyperTan().Gain(100),
		C:      0.3,
	})
	if err == supervised.ErrDidNotConverge {
		fmt.Println("warning: optimizer hit its iteration cap; using best model found")
	} else if err != nil {
		fmt.Printf("training failed: %s\n", err)
		return
	}

	var misses int
	for i := 0; i < ds.Len(); i++ {
		outs, err := model.Predict(ds.Inputs(i))
		if err != nil {
			fmt.Printf("predicting %v failed: %s\n", ds.Inputs(i), err)
			return
		}

		if outs[0] != ds.Targets(i)[0] {
			misses++
		}
		fmt.Printf("%6.0f → %+.0f (want %+.0f)\n", ds.Inputs(i)[0], outs[0], ds.Targets(i)[0])
	}

	fmt.Printf("%d support vectors, %d misses out of %d\n", model.NumSupportVectors(), misses, ds.Len())
}
