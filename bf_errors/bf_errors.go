package bf_errors

import (
	"fmt"
	"io"
	"os"
	"path"

	"github.com/pkg/errors"
)

type ErrorType int

const (
	UncaughtError ErrorType = iota
	UnreadableFile
	InvalidConfig
)

func (t ErrorType) String() string {
	switch t {
	case UnreadableFile:
		return "unreadable file"
	case InvalidConfig:
		return "invalid config"
	}

	return "uncaught error"
}

// FileError is a failure of the program surroundings: the script or the
// configuration could not be used. Nothing a program does at run time
// produces one.
type FileError struct {
	Type     ErrorType `json:"type"`
	FileName string    `json:"file_name"`
	FilePath string    `json:"file_path"`
	Reason   error     `json:"error"`
}

func CreateError(reason error, errorType ErrorType, filePath string) *FileError {
	return &FileError{
		Type:     errorType,
		Reason:   reason,
		FileName: path.Base(filePath),
		FilePath: filePath,
	}
}

func CreateUnreadableFileError(reason error, filePath string) *FileError {
	return CreateError(errors.Wrap(reason, "cannot read script"), UnreadableFile, filePath)
}

func CreateConfigError(reason error, filePath string) *FileError {
	return CreateError(errors.Wrap(reason, "cannot use config"), InvalidConfig, filePath)
}

func (err *FileError) Error() string {
	return fmt.Sprintf("%s: %s", err.FilePath, err.Reason)
}

func (err *FileError) Unwrap() error {
	return err.Reason
}

// Write reports the error. A script that does not exist gets the one line
// report the interpreter has always printed.
func (err *FileError) Write(w io.Writer) {
	if err.Type == UnreadableFile && errors.Is(err.Reason, os.ErrNotExist) {
		fmt.Fprintf(w, "Err:unexist file %s!\n", err.FilePath)
		return
	}

	fmt.Fprintf(w, "There is an %s:\n", err.Type)
	fmt.Fprintf(w, "\t'%s' in %s\n", err.Reason, err.FileName)
	fmt.Fprintf(w, "\t%s\n", err.FilePath)
}
