package port

type LineCounter interface {
	CountLines(path string) (int, error)
}
