package section

import "errors"

// ErrShortBuffer is returned when a Parse function is given fewer bytes
// than its fixed record size requires. This is a caller-side programming
// error (undersized slice), distinct from the file-format validation
// failures reported via errs.Error.
var ErrShortBuffer = errors.New("section: buffer too short for fixed record")
