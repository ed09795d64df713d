package srs

import "errors"

// errors.Is で判定してください: errors.Is(err, srs.ErrInvalidRating)
var (
	ErrInvalidRating     = errors.New("srs: invalid rating")
	ErrInvalidPagination = errors.New("srs: invalid pagination parameter")
)
