package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/sumaiya226/PCOS/internal/ml"
	"github.com/sumaiya226/PCOS/internal/ml/synth"
)

func newEvaluateCmd() *cobra.Command {
	var (
		kind     string
		samples  int
		seed     uint64
		modelDir string
		file     string
	)

	cmd := &cobra.Command{
		Use:   "evaluate",
		Short: "Reload a saved bundle and score it on a regenerated dataset",
		RunE: func(cmd *cobra.Command, args []string) error {
			var ds *ml.Dataset
			switch kind {
			case "clinical":
				if file == "" {
					file = "pcos_model.bundle"
				}
				ds = synth.Clinical(samples, seed)
			case "lifestyle":
				if file == "" {
					file = "lifestyle_model.bundle"
				}
				ds = synth.Lifestyle(samples, seed)
			default:
				return fmt.Errorf("unknown model kind %q (want clinical or lifestyle)", kind)
			}

			path := filepath.Join(modelDir, file)
			bundle, err := ml.LoadBundle(path)
			if err != nil {
				return err
			}

			fmt.Printf("Loaded %s bundle %s (trained %s)\n",
				bundle.Metadata.ModelName, bundle.Metadata.ID, bundle.CreatedAt.Format("2006-01-02 15:04"))

			X, err := bundle.Scaler.Transform(ds.X)
			if err != nil {
				return err
			}
			scaled := &ml.Dataset{X: X, Y: ds.Y, FeatureNames: ds.FeatureNames}

			accuracy, err := ml.AccuracyScorer(bundle.Model, scaled)
			if err != nil {
				return err
			}
			rocAUC, err := ml.ROCAUCScorer(bundle.Model, scaled)
			if err != nil {
				return err
			}
			pred, err := bundle.Model.Predict(scaled.X)
			if err != nil {
				return err
			}

			fmt.Printf("Accuracy: %.3f\n", accuracy)
			fmt.Printf("ROC-AUC: %.3f\n", rocAUC)
			printConfusionMatrix(ml.ConfusionMatrix(scaled.Y, pred))
			fmt.Println("\nClassification Report:")
			fmt.Println(ml.ClassificationReport(scaled.Y, pred, [2]string{"Healthy", "PCOS"}))
			return nil
		},
	}

	cmd.Flags().StringVar(&kind, "kind", "clinical", "model kind: clinical or lifestyle")
	cmd.Flags().IntVar(&samples, "samples", 1000, "number of synthetic samples to score against")
	cmd.Flags().Uint64Var(&seed, "seed", 1337, "random seed for the evaluation dataset")
	cmd.Flags().StringVar(&modelDir, "model-dir", "models", "directory with saved bundles")
	cmd.Flags().StringVar(&file, "bundle", "", "bundle file name (defaults by kind)")

	return cmd
}
