package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/stat"

	"github.com/sumaiya226/PCOS/internal/ml"
	"github.com/sumaiya226/PCOS/internal/ml/synth"
)

type trainFlags struct {
	samples  int
	seed     uint64
	folds    int
	modelDir string
	out      string
}

func newTrainCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "train",
		Short: "Train a model and save its bundle",
	}
	cmd.AddCommand(newTrainClinicalCmd())
	cmd.AddCommand(newTrainLifestyleCmd())
	return cmd
}

func addTrainFlags(cmd *cobra.Command, flags *trainFlags, defaultSamples int, defaultOut string) {
	cmd.Flags().IntVar(&flags.samples, "samples", defaultSamples, "number of synthetic samples")
	cmd.Flags().Uint64Var(&flags.seed, "seed", 42, "random seed")
	cmd.Flags().IntVar(&flags.folds, "folds", 5, "cross-validation folds")
	cmd.Flags().StringVar(&flags.modelDir, "model-dir", "models", "directory for saved bundles")
	cmd.Flags().StringVar(&flags.out, "out", defaultOut, "bundle file name")
}

func newTrainClinicalCmd() *cobra.Command {
	var flags trainFlags
	cmd := &cobra.Command{
		Use:   "clinical",
		Short: "Train the clinical-lab model (Logistic Regression vs Random Forest)",
		RunE: func(cmd *cobra.Command, args []string) error {
			return trainClinical(flags)
		},
	}
	addTrainFlags(cmd, &flags, 1000, "pcos_model.bundle")
	return cmd
}

func newTrainLifestyleCmd() *cobra.Command {
	var flags trainFlags
	cmd := &cobra.Command{
		Use:   "lifestyle",
		Short: "Train the lifestyle model (Random Forest on self-reported data)",
		RunE: func(cmd *cobra.Command, args []string) error {
			return trainLifestyle(flags)
		},
	}
	addTrainFlags(cmd, &flags, 2000, "lifestyle_model.bundle")
	return cmd
}

// candidate couples a model factory with its evaluation results during model
// selection.
type candidate struct {
	name     string
	factory  func() ml.Classifier
	model    ml.Classifier
	cvMean   float64
	cvStd    float64
	accuracy float64
	rocAUC   float64
}

func trainClinical(flags trainFlags) error {
	fmt.Println("Generating synthetic PCOS dataset...")
	ds := synth.Clinical(flags.samples, flags.seed)
	rows, cols := ds.X.Dims()
	positives := 0.0
	for _, label := range ds.Y {
		positives += label
	}
	fmt.Printf("Dataset shape: %dx%d\n", rows, cols)
	fmt.Printf("PCOS cases: %.0f (%.1f%%)\n", positives, positives/float64(rows)*100)

	train, test, err := ml.StratifiedSplit(ds, 0.2, int64(flags.seed))
	if err != nil {
		return err
	}

	scaler := ml.NewStandardScaler()
	trainX, err := scaler.FitTransform(train.X)
	if err != nil {
		return err
	}
	testX, err := scaler.Transform(test.X)
	if err != nil {
		return err
	}
	scaledTrain := &ml.Dataset{X: trainX, Y: train.Y, FeatureNames: ds.FeatureNames}
	scaledTest := &ml.Dataset{X: testX, Y: test.Y, FeatureNames: ds.FeatureNames}

	candidates := []*candidate{
		{
			name:    "Logistic Regression",
			factory: func() ml.Classifier { return ml.NewLogisticRegression() },
		},
		{
			name: "Random Forest",
			factory: func() ml.Classifier {
				rf := ml.NewRandomForest()
				rf.Seed = int64(flags.seed)
				return rf
			},
		},
	}

	fmt.Println("\nTraining and evaluating models...")
	var best *candidate
	for _, cand := range candidates {
		scores, err := ml.CrossValidate(cand.factory, scaledTrain, flags.folds, ml.ROCAUCScorer, int64(flags.seed))
		if err != nil {
			return fmt.Errorf("cross-validation for %s: %w", cand.name, err)
		}
		cand.cvMean = stat.Mean(scores, nil)
		cand.cvStd = stat.StdDev(scores, nil)

		cand.model = cand.factory()
		if err := cand.model.Fit(scaledTrain.X, scaledTrain.Y); err != nil {
			return fmt.Errorf("fitting %s: %w", cand.name, err)
		}

		cand.accuracy, err = ml.AccuracyScorer(cand.model, scaledTest)
		if err != nil {
			return err
		}
		cand.rocAUC, err = ml.ROCAUCScorer(cand.model, scaledTest)
		if err != nil {
			return err
		}

		fmt.Printf("\n%s:\n", cand.name)
		fmt.Printf("  CV ROC-AUC: %.3f (+/- %.3f)\n", cand.cvMean, cand.cvStd*2)
		fmt.Printf("  Test Accuracy: %.3f\n", cand.accuracy)
		fmt.Printf("  Test ROC-AUC: %.3f\n", cand.rocAUC)

		if best == nil || cand.rocAUC > best.rocAUC {
			best = cand
		}
	}

	fmt.Printf("\nBest model: %s (ROC-AUC: %.3f)\n", best.name, best.rocAUC)

	pred, err := best.model.Predict(scaledTest.X)
	if err != nil {
		return err
	}
	fmt.Println("\nClassification Report:")
	fmt.Println(ml.ClassificationReport(scaledTest.Y, pred, [2]string{"Healthy", "PCOS"}))
	printConfusionMatrix(ml.ConfusionMatrix(scaledTest.Y, pred))

	bundle := ml.NewBundle(best.model, scaler, ds.FeatureNames)
	bundle.Metadata.ModelVersion = "1.0"
	bundle.Metadata.Dataset = fmt.Sprintf("synthetic-clinical-%d", flags.samples)
	bundle.Metadata.TestAccuracy = best.accuracy
	bundle.Metadata.TestROCAUC = best.rocAUC
	bundle.Metadata.CVMean = best.cvMean
	bundle.Metadata.CVStd = best.cvStd
	bundle.Metadata.FeatureImportance = bundle.ImportanceByFeature()

	printImportances(bundle.Metadata.FeatureImportance)

	return saveBundle(bundle, flags.modelDir, flags.out)
}

func trainLifestyle(flags trainFlags) error {
	fmt.Println("Generating synthetic lifestyle dataset...")
	ds := synth.Lifestyle(flags.samples, flags.seed)

	train, test, err := ml.StratifiedSplit(ds, 0.2, int64(flags.seed))
	if err != nil {
		return err
	}
	fmt.Printf("Training set: %d samples\n", len(train.Y))
	fmt.Printf("Test set: %d samples\n", len(test.Y))

	scaler := ml.NewStandardScaler()
	trainX, err := scaler.FitTransform(train.X)
	if err != nil {
		return err
	}
	testX, err := scaler.Transform(test.X)
	if err != nil {
		return err
	}
	scaledTrain := &ml.Dataset{X: trainX, Y: train.Y, FeatureNames: ds.FeatureNames}
	scaledTest := &ml.Dataset{X: testX, Y: test.Y, FeatureNames: ds.FeatureNames}

	factory := func() ml.Classifier {
		rf := ml.NewRandomForest()
		rf.NEstimators = 200
		rf.MaxDepth = 15
		rf.MinSamplesSplit = 5
		rf.MinSamplesLeaf = 2
		rf.BalancedWeights = true
		rf.Seed = int64(flags.seed)
		return rf
	}

	fmt.Println("\nTraining Random Forest Classifier...")
	model := factory()
	if err := model.Fit(scaledTrain.X, scaledTrain.Y); err != nil {
		return err
	}

	trainAcc, err := ml.AccuracyScorer(model, scaledTrain)
	if err != nil {
		return err
	}
	testAcc, err := ml.AccuracyScorer(model, scaledTest)
	if err != nil {
		return err
	}
	fmt.Printf("Training Accuracy: %.2f%%\n", trainAcc*100)
	fmt.Printf("Test Accuracy: %.2f%%\n", testAcc*100)

	scores, err := ml.CrossValidate(factory, scaledTrain, flags.folds, ml.AccuracyScorer, int64(flags.seed))
	if err != nil {
		return err
	}
	cvMean := stat.Mean(scores, nil)
	cvStd := stat.StdDev(scores, nil)
	fmt.Printf("Cross-Validation Accuracy: %.2f%% (+/- %.2f%%)\n", cvMean*100, cvStd*100)

	pred, err := model.Predict(scaledTest.X)
	if err != nil {
		return err
	}
	fmt.Println("\nClassification Report:")
	fmt.Println(ml.ClassificationReport(scaledTest.Y, pred, [2]string{"Healthy", "PCOS"}))

	rocAUC, err := ml.ROCAUCScorer(model, scaledTest)
	if err != nil {
		return err
	}

	bundle := ml.NewBundle(model, scaler, ds.FeatureNames)
	bundle.Metadata.ModelVersion = "1.0"
	bundle.Metadata.Dataset = fmt.Sprintf("synthetic-lifestyle-%d", flags.samples)
	bundle.Metadata.TestAccuracy = testAcc
	bundle.Metadata.TestROCAUC = rocAUC
	bundle.Metadata.CVMean = cvMean
	bundle.Metadata.CVStd = cvStd
	bundle.Metadata.FeatureImportance = bundle.ImportanceByFeature()

	printImportances(bundle.Metadata.FeatureImportance)

	if err := saveBundle(bundle, flags.modelDir, flags.out); err != nil {
		return err
	}

	smokeTestLifestyle(bundle)
	return nil
}

// smokeTestLifestyle sanity-checks the saved pipeline against two canned
// profiles that should land on opposite ends of the risk scale.
func smokeTestLifestyle(bundle *ml.Bundle) {
	profiles := []struct {
		name  string
		input []float64
	}{
		{"High Risk", []float64{30, 32, 2, 60, 3, 2, 2, 2, 1, 8, 1, 4}},
		{"Low Risk", []float64{25, 22, 0, 28, 0, 0, 0, 0, 0, 3, 5, 8}},
	}

	fmt.Println("\nTesting sample predictions...")
	for _, profile := range profiles {
		scaled, err := bundle.Scaler.TransformVector(profile.input)
		if err != nil {
			fmt.Printf("  %s: scaling failed: %v\n", profile.name, err)
			continue
		}
		label, proba, err := ml.PredictOne(bundle.Model, scaled)
		if err != nil {
			fmt.Printf("  %s: prediction failed: %v\n", profile.name, err)
			continue
		}
		verdict := "Healthy"
		if label == 1 {
			verdict = "PCOS Risk"
		}
		fmt.Printf("  %s Profile: %s (PCOS probability %.1f%%)\n", profile.name, verdict, proba[1]*100)
	}
}

func printConfusionMatrix(cm [2][2]int) {
	fmt.Println("Confusion Matrix:")
	fmt.Printf("  [[%4d %4d]\n   [%4d %4d]]\n", cm[0][0], cm[0][1], cm[1][0], cm[1][1])
}

func printImportances(importance map[string]float64) {
	if importance == nil {
		return
	}
	names := make([]string, 0, len(importance))
	for name := range importance {
		names = append(names, name)
	}
	sort.Slice(names, func(a, b int) bool {
		return importance[names[a]] > importance[names[b]]
	})

	fmt.Println("\nFeature Importance:")
	for _, name := range names {
		fmt.Printf("  %-25s: %.4f\n", name, importance[name])
	}
}

func saveBundle(bundle *ml.Bundle, dir, file string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating model dir: %w", err)
	}
	path := filepath.Join(dir, file)
	if err := bundle.Save(path); err != nil {
		return err
	}
	fmt.Printf("\nModel bundle saved to %s\n", path)
	return nil
}
