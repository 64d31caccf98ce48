package fraudscan

import "errors"

var ErrNoCandidates = errors.New("no candidates")
