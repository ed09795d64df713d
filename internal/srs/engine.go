package srs

import (
	"fmt"
	"math"
	"time"
)

const (
	againEasePenalty = 0.20
	hardEasePenalty  = 0.15
	easyEaseBonus    = 0.15
)

// Transition は state に rating を適用した次の状態を返します。
//
// now は呼び出し側が渡す現在時刻で、関数内で時計は読みません。NextReview は
// now から Interval 日後 (暦日単位、時刻は now のまま) になります。
// 入力の state は先に Normalize されるので、範囲外の EaseFactor が渡されても結果は範囲内に収まります。
// Good / Easy の 3 回目以降の間隔は round(前回の間隔 × EaseFactor) ですが、MaxInterval (36500 日) で頭打ちにします。
// Hard の間隔も同じ上限です。
// rating が不正な場合は ErrInvalidRating を返し、state はそのまま返します。
func Transition(state State, rating Rating, now time.Time) (State, error) {
	if !rating.IsValid() {
		return state, fmt.Errorf("%w: %d", ErrInvalidRating, int(rating))
	}

	cur := state.Normalize()
	next := cur

	switch rating {
	case Again:
		next.Repetitions = 0
		next.Interval = MinInterval
		next.EaseFactor = roundEase(clampEase(cur.EaseFactor - againEasePenalty))

	case Hard:
		next.Repetitions = 0
		// floor(interval * 1.2) を整数演算で計算する
		next.Interval = min(MaxInterval, max(MinInterval, cur.Interval*6/5))
		next.EaseFactor = roundEase(clampEase(cur.EaseFactor - hardEasePenalty))

	case Good:
		next.Repetitions = cur.Repetitions + 1
		next.EaseFactor = roundEase(cur.EaseFactor)
		next.Interval = growInterval(next.Repetitions, 1, cur.Interval, next.EaseFactor)

	case Easy:
		next.Repetitions = cur.Repetitions + 1
		next.EaseFactor = roundEase(clampEase(cur.EaseFactor + easyEaseBonus))
		next.Interval = growInterval(next.Repetitions, 4, cur.Interval, next.EaseFactor)
	}

	reviewed := now
	next.LastReviewed = &reviewed
	next.NextReview = now.AddDate(0, 0, next.Interval)
	return next, nil
}

// growInterval は成功時 (Good / Easy) の間隔を決めます。
// 1 回目は first 日、2 回目は 6 日、それ以降は前回の間隔 × EaseFactor を四捨五入します。
func growInterval(repetitions, first, prevInterval int, ease float64) int {
	switch repetitions {
	case 1:
		return first
	case 2:
		return 6
	}
	grown := math.Round(float64(prevInterval) * ease)
	if grown > MaxInterval {
		return MaxInterval
	}
	return max(MinInterval, int(grown))
}
