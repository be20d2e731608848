package parser

import (
	"bufio"
	"context"
	"io"
	"strings"

	"github.com/spf13/afero"
)

// FileSource implements LineSource for reading log files one after another.
type FileSource struct {
	fs    afero.Fs
	files []string

	currentFile   afero.File
	currentReader *bufio.Reader
	currentSource string
	currentLine   int
	fileIndex     int
}

// NewFileSource creates a LineSource that reads the given files in order.
func NewFileSource(fsys afero.Fs, files []string) *FileSource {
	return &FileSource{
		fs:        fsys,
		files:     files,
		fileIndex: -1,
	}
}

// Next returns the next non-empty line.
// Returns io.EOF when all files have been exhausted.
func (s *FileSource) Next(ctx context.Context) (*LogLine, error) {
	for {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		if s.currentReader == nil {
			if err := s.openNextFile(); err != nil {
				return nil, err
			}
		}

		line, err := ReadLine(s.currentReader)
		if err == io.EOF {
			if err := s.closeCurrentFile(); err != nil {
				return nil, err
			}
			continue
		}
		if err != nil {
			readErr := &ReadError{Path: s.currentSource, Line: s.currentLine, Err: err}
			_ = s.closeCurrentFile()
			return nil, readErr
		}

		s.currentLine++
		if line == "" {
			continue
		}

		return &LogLine{
			Content: line,
			Source:  s.currentSource,
			LineNum: s.currentLine,
		}, nil
	}
}

// Close releases resources.
func (s *FileSource) Close() error {
	return s.closeCurrentFile()
}

// ReadLine returns the next line of r without its "\n" or "\r\n" terminator.
// Lines are not length limited. A last line without a terminator is returned
// normally; io.EOF is only reported once r is exhausted.
func ReadLine(r *bufio.Reader) (string, error) {
	line, err := r.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return "", err
	}
	line = strings.TrimSuffix(line, "\n")
	return strings.TrimSuffix(line, "\r"), nil
}

func (s *FileSource) openNextFile() error {
	s.fileIndex++
	if s.fileIndex >= len(s.files) {
		return io.EOF
	}

	path := s.files[s.fileIndex]
	f, err := s.fs.Open(path)
	if err != nil {
		return &OpenError{Path: path, Err: err}
	}

	s.currentFile = f
	s.currentReader = bufio.NewReaderSize(f, 64*1024)
	s.currentSource = path
	s.currentLine = 0

	return nil
}

func (s *FileSource) closeCurrentFile() error {
	s.currentReader = nil
	if s.currentFile != nil {
		err := s.currentFile.Close()
		s.currentFile = nil
		return err
	}
	return nil
}
