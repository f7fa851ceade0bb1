package mocks

type OpenerMock struct {
	OpenDirectoryFunc func(path string) error

	Opened []string
}

func (m *OpenerMock) OpenDirectory(path string) error {
	m.Opened = append(m.Opened, path)
	if m.OpenDirectoryFunc != nil {
		return m.OpenDirectoryFunc(path)
	}
	return nil
}
