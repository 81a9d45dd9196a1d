// Package qml provides quantum kernel machine learning for Go, built around
// an exact statevector simulator, Pauli feature maps, fidelity-based quantum
// kernels, and the Pegasos quantum support vector classifier.
//
// The API follows scikit-learn conventions so that pipelines written against
// Python quantum machine learning stacks translate directly: estimators
// expose Fit/Predict/Score, transformers expose Fit/Transform/FitTransform,
// and fitted state lives in trailing-underscore attributes.
//
// # Installation
//
// Install using go get:
//
//	go get github.com/ShivaniRajput11/qiskit-machine-learning
//
// # Quick Start
//
// Train a Pegasos QSVC on a two-class dataset with a ZZ feature map kernel:
//
//	package main
//
//	import (
//	    "fmt"
//	    "log"
//
//	    "github.com/ShivaniRajput11/qiskit-machine-learning/datasets"
//	    "github.com/ShivaniRajput11/qiskit-machine-learning/featuremap"
//	    "github.com/ShivaniRajput11/qiskit-machine-learning/kernel"
//	    "github.com/ShivaniRajput11/qiskit-machine-learning/svm"
//	)
//
//	func main() {
//	    X, y, err := datasets.MakeBlobs(20, 2, datasets.WithBlobsSeed(42))
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//
//	    fm, err := featuremap.NewZZFeatureMap(2)
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    qk, err := kernel.NewFidelityQuantumKernel(fm, nil)
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//
//	    clf, err := svm.NewPegasosQSVC(svm.WithKernel(qk), svm.WithC(1000), svm.WithNumSteps(100))
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    if err := clf.Fit(X, datasets.LabelColumn(y)); err != nil {
//	        log.Fatal(err)
//	    }
//
//	    score, err := clf.Score(X, datasets.LabelColumn(y))
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    fmt.Printf("training accuracy: %.3f\n", score)
//	}
//
// # Packages
//
// The library is organized into several packages:
//
//   - quantum: statevector simulator, circuits, gates, symbolic parameters
//   - featuremap: Z, ZZ, and general Pauli feature maps
//   - fidelity: compute-uncompute state fidelity, exact or shot-based
//   - kernel: fidelity quantum kernel and precomputed kernel matrices
//   - svm: Pegasos quantum support vector classifier
//   - datasets: synthetic dataset generators and train/test splitting
//   - preprocessing: feature scaling
//   - metrics: classification metrics (accuracy, precision, recall, AUC)
//   - visualization: scatter plots and decision-boundary heat maps
//   - core/model: core interfaces, base estimator, gob persistence
//   - core/parallel: parallel processing utilities
//
// # Performance
//
// Statevector evolution parallelizes gate application across CPU cores for
// larger registers, and kernel matrices are filled by a bounded worker pool
// that exploits symmetry to halve the number of fidelity evaluations.
//
// # License
//
// Released under the MIT License.
package qml
