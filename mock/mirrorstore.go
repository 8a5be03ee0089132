package mock

import "github.com/fwojciec/bodymd"

var _ bodymd.MirrorStore = (*MirrorStore)(nil)

// MirrorStore is a mock implementation of bodymd.MirrorStore.
type MirrorStore struct {
	WriteMirrorFn func(path string, content string) error
	UpToDateFn    func(path string, content string) (bool, error)
}

func (s *MirrorStore) WriteMirror(path string, content string) error {
	return s.WriteMirrorFn(path, content)
}

func (s *MirrorStore) UpToDate(path string, content string) (bool, error) {
	return s.UpToDateFn(path, content)
}
