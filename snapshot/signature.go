package snapshot

import "os"

// FileVersionSignature is a cheap fingerprint of a file's on-disk state:
// modification time plus byte length. It is a staleness proxy, not a
// cryptographic guarantee.
type FileVersionSignature struct {
	ModifiedUnixNanos int64 `json:"modified_unix_nanos"`
	FileLen           int64 `json:"file_len"`
}

// Equal reports whether both fields match.
func (s FileVersionSignature) Equal(other FileVersionSignature) bool {
	return s.ModifiedUnixNanos == other.ModifiedUnixNanos && s.FileLen == other.FileLen
}

// SignatureFor computes the current signature of the file at path. It returns
// nil when metadata is unavailable; callers proceed best-effort in that case.
func SignatureFor(path string) *FileVersionSignature {
	info, err := os.Stat(path)
	if err != nil {
		return nil
	}
	return &FileVersionSignature{
		ModifiedUnixNanos: info.ModTime().UnixNano(),
		FileLen:           info.Size(),
	}
}

// SignaturesMatch compares two possibly-absent signatures. Two absent
// signatures match (there is nothing to distinguish them by); an absent
// signature never matches a present one.
func SignaturesMatch(a, b *FileVersionSignature) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.Equal(*b)
}
