// README: XGBoost artifact loading backed by the pure-Go leaves library.
package ensemble

import (
	"fmt"
	"log"
	"path/filepath"

	"github.com/dmitryikh/leaves"
)

// Artifact file names, one fixed slot per model.
const (
	fareModelFile = "xgb_fare_predictor.ubj"
	tollsClfFile  = "xgb_classifier_tolls.ubj"
	tollsRegFile  = "xgb_regressor_tolls.ubj"
	tipClfFile    = "xgb_classifier_tips.ubj"
	tipRegFile    = "xgb_regressor_tips.ubj"
)

// leavesModel adapts a loaded tree ensemble to the Scorer contract by
// mapping named features onto the positional vector the trees expect.
type leavesModel struct {
	model *leaves.Ensemble
	order []string
}

func (m *leavesModel) Score(features map[string]float64) (float64, error) {
	vec, err := buildVector(m.order, features)
	if err != nil {
		return 0, err
	}
	return m.model.PredictSingle(vec, 0), nil
}

func buildVector(order []string, features map[string]float64) ([]float64, error) {
	vec := make([]float64, len(order))
	for i, name := range order {
		v, ok := features[name]
		if !ok {
			return nil, fmt.Errorf("missing feature %q", name)
		}
		vec[i] = v
	}
	return vec, nil
}

// Load reads all five artifacts from dir. Classifiers load their logistic
// transformation so scores come out as probabilities; regressors score raw.
// Failure on any artifact returns a degraded Status instead of an error so
// the surrounding service keeps answering health checks and static content.
func Load(dir string) (*Ensemble, Status) {
	var st Status

	load := func(file string, order []string, transform bool) (*leavesModel, error) {
		m, err := leaves.XGEnsembleFromFile(filepath.Join(dir, file), transform)
		if err != nil {
			return nil, fmt.Errorf("load %s: %w", file, err)
		}
		return &leavesModel{model: m, order: order}, nil
	}

	fareReg, err := load(fareModelFile, FareFeatures, false)
	if err != nil {
		log.Printf("ensemble: %v", err)
		return nil, st
	}
	tollsClf, err := load(tollsClfFile, TollsFeatures, true)
	if err != nil {
		log.Printf("ensemble: %v", err)
		return nil, st
	}
	tollsReg, err := load(tollsRegFile, TollsFeatures, false)
	if err != nil {
		log.Printf("ensemble: %v", err)
		return nil, st
	}
	tipClf, err := load(tipClfFile, TipFeatures, true)
	if err != nil {
		log.Printf("ensemble: %v", err)
		return nil, st
	}
	tipReg, err := load(tipRegFile, TipFeatures, false)
	if err != nil {
		log.Printf("ensemble: %v", err)
		return nil, st
	}

	st.ModelsLoaded = true
	// Tree scoring runs on the CPU in-process; there is no accelerated path
	// in this build, so the flag stays false.
	st.Accelerated = false

	return &Ensemble{
		FareReg:  fareReg,
		TollsClf: tollsClf,
		TollsReg: tollsReg,
		TipClf:   tipClf,
		TipReg:   tipReg,
	}, st
}
