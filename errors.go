package bloomfilter

import "errors"

// ErrConfiguration is returned (wrapped) by constructors when the hash count,
// store size or digest segmentation is inconsistent. Use errors.Is to test for it.
var ErrConfiguration = errors.New("bloomfilter: invalid configuration")
