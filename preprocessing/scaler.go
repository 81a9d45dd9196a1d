// Package preprocessing はデータの前処理（スケーリング）を提供する。
// 量子特徴マップは回転角としてデータを符号化するため、学習前に
// 特徴量を [0, π] などの固定範囲へ収めるのが通例である。
package preprocessing

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/ShivaniRajput11/qiskit-machine-learning/core/model"
	"github.com/ShivaniRajput11/qiskit-machine-learning/pkg/errors"
)

// MinMaxScaler はscikit-learn互換のMin-Maxスケーラー
// データを指定した範囲（デフォルト[0,1]）にスケーリングする
type MinMaxScaler struct {
	model.BaseEstimator

	// DataMin は学習データの各特徴量の最小値
	DataMin []float64

	// DataMax は学習データの各特徴量の最大値
	DataMax []float64

	// Scale は変換の倍率 (featureRange幅 / データ幅)
	Scale []float64

	// Min は変換のオフセット
	Min []float64

	// NFeatures は特徴量の数
	NFeatures int

	// FeatureRange はスケーリング後の範囲 [min, max]
	FeatureRange [2]float64
}

// NewMinMaxScaler は新しいMinMaxScalerを作成する
//
// パラメータ:
//   - featureRange: スケーリング後の範囲 [min, max]
//
// 使用例:
//
//	// 量子特徴マップ向けに [0, π] へスケーリング
//	scaler, err := preprocessing.NewMinMaxScaler([2]float64{0, math.Pi})
func NewMinMaxScaler(featureRange [2]float64) (*MinMaxScaler, error) {
	if featureRange[1] <= featureRange[0] {
		return nil, errors.NewValidationError("featureRange", "max must exceed min", featureRange)
	}
	return &MinMaxScaler{FeatureRange: featureRange}, nil
}

// NewMinMaxScalerDefault はデフォルト設定([0,1]範囲)でMinMaxScalerを作成する
func NewMinMaxScalerDefault() *MinMaxScaler {
	s, _ := NewMinMaxScaler([2]float64{0, 1})
	return s
}

// Fit は訓練データから各特徴量の最小値・最大値を学習する
func (m *MinMaxScaler) Fit(X mat.Matrix) error {
	if X == nil {
		return errors.NewValidationError("X", "must not be nil", nil)
	}
	r, c := X.Dims()
	if r == 0 || c == 0 {
		return errors.NewModelError("MinMaxScaler.Fit", "empty data", errors.ErrEmptyData)
	}

	m.NFeatures = c
	m.DataMin = make([]float64, c)
	m.DataMax = make([]float64, c)
	m.Scale = make([]float64, c)
	m.Min = make([]float64, c)

	width := m.FeatureRange[1] - m.FeatureRange[0]
	for j := 0; j < c; j++ {
		lo, hi := X.At(0, j), X.At(0, j)
		for i := 1; i < r; i++ {
			v := X.At(i, j)
			if v < lo {
				lo = v
			}
			if v > hi {
				hi = v
			}
		}
		m.DataMin[j] = lo
		m.DataMax[j] = hi

		dataRange := hi - lo
		if math.Abs(dataRange) < 1e-12 {
			// 定数特徴量は範囲の下限へ写す
			m.Scale[j] = 0
			m.Min[j] = m.FeatureRange[0]
			continue
		}
		m.Scale[j] = width / dataRange
		m.Min[j] = m.FeatureRange[0] - lo*m.Scale[j]
	}

	m.SetFitted()
	return nil
}

// Transform は学習済みの統計情報でデータをスケーリングする
func (m *MinMaxScaler) Transform(X mat.Matrix) (mat.Matrix, error) {
	if !m.IsFitted() {
		return nil, errors.NewNotFittedError("MinMaxScaler", "Transform")
	}
	if X == nil {
		return nil, errors.NewValidationError("X", "must not be nil", nil)
	}
	r, c := X.Dims()
	if c != m.NFeatures {
		return nil, errors.NewDimensionError("MinMaxScaler.Transform", m.NFeatures, c, 1)
	}

	out := mat.NewDense(r, c, nil)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			out.Set(i, j, X.At(i, j)*m.Scale[j]+m.Min[j])
		}
	}
	return out, nil
}

// FitTransform はFitとTransformを連続して実行する
func (m *MinMaxScaler) FitTransform(X mat.Matrix) (mat.Matrix, error) {
	if err := m.Fit(X); err != nil {
		return nil, err
	}
	return m.Transform(X)
}

// InverseTransform はスケーリングを逆変換して元の尺度へ戻す。
// 定数特徴量は学習時の値に戻る。
func (m *MinMaxScaler) InverseTransform(X mat.Matrix) (mat.Matrix, error) {
	if !m.IsFitted() {
		return nil, errors.NewNotFittedError("MinMaxScaler", "InverseTransform")
	}
	if X == nil {
		return nil, errors.NewValidationError("X", "must not be nil", nil)
	}
	r, c := X.Dims()
	if c != m.NFeatures {
		return nil, errors.NewDimensionError("MinMaxScaler.InverseTransform", m.NFeatures, c, 1)
	}

	out := mat.NewDense(r, c, nil)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if m.Scale[j] == 0 {
				out.Set(i, j, m.DataMin[j])
				continue
			}
			out.Set(i, j, (X.At(i, j)-m.Min[j])/m.Scale[j])
		}
	}
	return out, nil
}
