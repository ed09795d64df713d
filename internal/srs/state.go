package srs

import (
	"math"
	"time"
)

const (
	DefaultEaseFactor = 2.5
	MinEaseFactor     = 1.3
	MaxEaseFactor     = 4.0

	MinInterval = 1
	// MaxInterval は間隔の上限 (日数) です。Easy を繰り返しても int が溢れないようにします。
	MaxInterval = 36500
	// MaxRepetitions は連続正解回数の上限です。+1 しても int が溢れないようにします。
	MaxRepetitions = math.MaxInt32 - 1
)

// State は 1 枚のカードの復習スケジュール状態です。
// JSON のフィールド名は API の表現 (easeFactor, interval, ...) に合わせています。
type State struct {
	EaseFactor   float64    `json:"easeFactor"`
	Interval     int        `json:"interval"` // 日数
	Repetitions  int        `json:"repetitions"`
	NextReview   time.Time  `json:"nextReview"`
	LastReviewed *time.Time `json:"lastReviewed"` // 初回復習前は nil
}

// NewState はカード作成時の初期状態を返します。NextReview は now なので即座に復習対象になります。
func NewState(now time.Time) State {
	return State{
		EaseFactor:  DefaultEaseFactor,
		Interval:    MinInterval,
		Repetitions: 0,
		NextReview:  now,
	}
}

// Normalize は不変条件を満たすように値を補正したコピーを返します。
// 古いバージョンが書き込んだ範囲外の値もここで救済します。
func (s State) Normalize() State {
	out := s
	out.EaseFactor = clampEase(s.EaseFactor)
	if out.Interval < MinInterval {
		out.Interval = MinInterval
	}
	if out.Interval > MaxInterval {
		out.Interval = MaxInterval
	}
	if out.Repetitions < 0 {
		out.Repetitions = 0
	}
	if out.Repetitions > MaxRepetitions {
		out.Repetitions = MaxRepetitions
	}
	if s.LastReviewed != nil {
		v := *s.LastReviewed
		out.LastReviewed = &v
	}
	return out
}

// IsDue は at の時点で復習対象かどうかを返します (NextReview <= at)。
func (s State) IsDue(at time.Time) bool {
	return !s.NextReview.After(at)
}

func clampEase(ef float64) float64 {
	switch {
	case math.IsNaN(ef):
		return DefaultEaseFactor
	case ef < MinEaseFactor:
		return MinEaseFactor
	case ef > MaxEaseFactor:
		return MaxEaseFactor
	}
	return ef
}

// roundEase は小数点以下 2 桁に丸めます。
func roundEase(ef float64) float64 {
	return math.Round(ef*100) / 100
}
