package view

import (
	"fmt"
	"path/filepath"

	"github.com/soocke/ninepatch-go/domain/ninepatch"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// Dialogs implements the presenter's dialog contract with native Tk dialogs.
type Dialogs struct{}

func imageFileTypes() []FileType {
	exts := append([]string(nil), ninepatch.SupportedExtensions...)
	return []FileType{
		{TypeName: "Image files", Extensions: exts},
		{TypeName: "All files", Extensions: []string{"*"}},
	}
}

// OpenImagePath shows the open dialog. ok is false when the user cancels.
func (Dialogs) OpenImagePath(dir string) (string, bool) {
	opts := []Opt{Title("Select image"), Filetypes(imageFileTypes())}
	if dir != "" {
		opts = append(opts, Initialdir(dir))
	}
	files := GetOpenFile(opts...)
	if len(files) == 0 || files[0] == "" {
		return "", false
	}
	return files[0], true
}

// SaveNinePatchPath shows the save dialog defaulting to the .9.png extension.
func (Dialogs) SaveNinePatchPath(dir, name string) (string, bool) {
	opts := []Opt{
		Title("Save nine-patch image"),
		Defaultextension(ninepatch.Extension),
		Filetypes([]FileType{
			{TypeName: "Nine-patch PNG", Extensions: []string{ninepatch.Extension}},
			{TypeName: "All files", Extensions: []string{"*"}},
		}),
	}
	if dir != "" {
		opts = append(opts, Initialdir(dir))
	}
	if name != "" {
		opts = append(opts, Initialfile(name))
	}
	path := GetSaveFile(opts...)
	if path == "" {
		return "", false
	}
	return path, true
}

// ConfirmOverwrite asks whether an existing file may be replaced.
func (Dialogs) ConfirmOverwrite(path string) bool {
	answer := MessageBox(Icon("warning"), Type("yesno"), Default("no"), Title("Confirm Save As"),
		Msg(fmt.Sprintf("%s already exists.\nDo you want to replace it?", filepath.Base(path))))
	return answer == "yes"
}

// ShowError blocks on an error message box.
func (Dialogs) ShowError(title, msg string) {
	MessageBox(Icon("error"), Title(title), Msg(msg))
}

// ShowInfo blocks on an information message box.
func (Dialogs) ShowInfo(title, msg string) {
	MessageBox(Icon("info"), Title(title), Msg(msg))
}
