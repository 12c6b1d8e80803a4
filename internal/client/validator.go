package client

import "strings"

// FileTypeAlertMessage is the user-visible warning raised when a receipt with
// a disallowed file type is selected.
const FileTypeAlertMessage = "Seuls les fichiers jpg, jpeg et png sont autorisés."

var allowedReceiptExtensions = map[string]struct{}{
	"jpg":  {},
	"jpeg": {},
	"png":  {},
}

// IsAllowedReceiptName reports whether fileName carries an accepted receipt
// extension. The check is extension-based and case-insensitive, on the final
// dot-separated segment of the name; a name without a dot is rejected.
func IsAllowedReceiptName(fileName string) bool {
	i := strings.LastIndexByte(fileName, '.')
	if i < 0 {
		return false
	}
	ext := strings.ToLower(fileName[i+1:])
	_, ok := allowedReceiptExtensions[ext]
	return ok
}
