package srs

import (
	"encoding"
	"encoding/json"
	"fmt"
	"strings"
)

// Rating は 1 回の復習に対する学習者の自己評価です。Again < Hard < Good < Easy の順に並びます。
type Rating int

const (
	Again Rating = iota + 1 // 思い出せなかった
	Hard                    // かなり苦労して思い出した
	Good                    // 普通に思い出せた
	Easy                    // 即答できた
)

var (
	ratingNames  = [...]string{Again: "again", Hard: "hard", Good: "good", Easy: "easy"}
	ratingByName = map[string]Rating{
		"again": Again,
		"hard":  Hard,
		"good":  Good,
		"easy":  Easy,
	}
)

var (
	_ fmt.Stringer             = Rating(0)
	_ json.Marshaler           = Rating(0)
	_ json.Unmarshaler         = (*Rating)(nil)
	_ encoding.TextMarshaler   = Rating(0)
	_ encoding.TextUnmarshaler = (*Rating)(nil)
)

// Ratings は有効な評価を昇順で返します。
func Ratings() []Rating {
	return []Rating{Again, Hard, Good, Easy}
}

// ParseRating は "again" / "hard" / "good" / "easy" を Rating に変換します。
// 前後の空白は無視しますが、大文字小文字は区別します。
func ParseRating(s string) (Rating, error) {
	r, ok := ratingByName[strings.TrimSpace(s)]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrInvalidRating, s)
	}
	return r, nil
}

func (r Rating) String() string {
	if r.IsValid() {
		return ratingNames[r]
	}
	return fmt.Sprintf("Rating(%d)", int(r))
}

func (r Rating) IsValid() bool {
	return r >= Again && r <= Easy
}

func (r Rating) MarshalText() ([]byte, error) {
	if !r.IsValid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidRating, int(r))
	}
	return []byte(ratingNames[r]), nil
}

func (r *Rating) UnmarshalText(text []byte) error {
	v, err := ParseRating(string(text))
	if err != nil {
		return err
	}
	*r = v
	return nil
}

// MarshalJSON は Rating を JSON 文字列 ("good" など) として出力します。
func (r Rating) MarshalJSON() ([]byte, error) {
	text, err := r.MarshalText()
	if err != nil {
		return nil, err
	}
	return json.Marshal(string(text))
}

func (r *Rating) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidRating, data)
	}
	return r.UnmarshalText([]byte(s))
}
