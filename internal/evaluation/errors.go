package evaluation

import "errors"

// Sentinel kinds for evaluation errors.
var (
	ErrEmptyPlaceName        = errors.New("place name is empty")
	ErrMissingCharacteristic = errors.New("missing characteristic")
	ErrNotFound              = errors.New("evaluation not found")
)
