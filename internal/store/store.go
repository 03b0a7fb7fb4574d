package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/AlexZinkM/chain-wallet/internal/model"
)

// Extension is the required extension of wallet record files
const Extension = ".wlt"

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// FileExistsError is an error when file already exists and is not empty
type FileExistsError struct {
	Message string
}

func (e *FileExistsError) Error() string {
	return e.Message
}

// IsFileExistsError checks if error is FileExistsError
func IsFileExistsError(err error) bool {
	var target *FileExistsError
	return errors.As(err, &target)
}

// WriteRecord writes a wallet record to filePath. An existing non-empty file
// is never overwritten unless overwrite is set.
func WriteRecord(filePath string, rec *model.WalletRecord, overwrite bool) error {
	// Check file extension (.wlt)
	if filepath.Ext(filePath) != Extension {
		return fmt.Errorf("file must have %s extension", Extension)
	}

	if !overwrite {
		if fileInfo, err := os.Stat(filePath); err == nil && fileInfo.Size() > 0 {
			return &FileExistsError{Message: "file is not empty"}
		}
	}

	// Serialize to JSON
	fileData, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal wallet record: %w", err)
	}
	defer clear(fileData) // may hold an unlocked WIF

	// Add UTF-8 BOM for proper display in Windows
	fileDataWithBOM := append(append([]byte{}, utf8BOM...), fileData...)
	defer clear(fileDataWithBOM)

	// Write to file
	if err := os.WriteFile(filePath, fileDataWithBOM, 0600); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}

	return nil
}

// ReadRecord reads a wallet record from filePath
func ReadRecord(filePath string) (*model.WalletRecord, error) {
	fileData, err := readFile(filePath)
	if err != nil {
		return nil, err
	}
	defer clear(fileData)

	var rec model.WalletRecord
	if err := json.Unmarshal(fileData, &rec); err != nil {
		return nil, fmt.Errorf("failed to unmarshal wallet record: %w", err)
	}

	return &rec, nil
}

// ReadAddress reads only the address from a wallet record file
func ReadAddress(filePath string) (string, error) {
	rec, err := ReadRecord(filePath)
	if err != nil {
		return "", err
	}
	rec.Zero()

	return rec.Address, nil
}

func readFile(filePath string) ([]byte, error) {
	// Check if file exists
	fileInfo, err := os.Stat(filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.New("file does not exist")
		}
		return nil, fmt.Errorf("failed to stat file: %w", err)
	}

	// Check that file is not empty
	if fileInfo.Size() == 0 {
		return nil, errors.New("file is empty")
	}

	fileData, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	// Skip UTF-8 BOM if present
	if len(fileData) >= 3 && fileData[0] == 0xEF && fileData[1] == 0xBB && fileData[2] == 0xBF {
		fileData = fileData[3:]
	}

	return fileData, nil
}
