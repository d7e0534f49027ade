package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/lipgloss"
	"github.com/schollz/progressbar/v3"

	"github.com/SLCPython/jpeg-rename/photo"
)

var Version = "dev"

// Styling functions using lipgloss
var (
	headerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("86")).
			Background(lipgloss.Color("235")).
			Bold(true).
			Padding(0, 2)

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("46")).
			Bold(true)

	infoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("33"))
)

type CLI struct {
	Clobber   bool   `short:"c" help:"Really rename the files instead of previewing."`
	Directory string `short:"d" help:"Read image files from this directory." type:"path"`
}

func (cli *CLI) Run() error {
	dir := cli.Directory
	if dir == "" {
		exe, err := os.Executable()
		if err != nil {
			return fmt.Errorf("cannot determine own location: %w", err)
		}
		dir = filepath.Dir(exe)
	}

	if err := checkWorkdir(dir); err != nil {
		return err
	}

	batch, err := photo.Plan(dir, photo.ReadMetadata)
	if err != nil {
		return err
	}

	fmt.Println(headerStyle.Render(fmt.Sprintf("jpeg-rename %s", Version)))
	fmt.Println(infoStyle.Render(fmt.Sprintf("Planned %d renames in %s", len(batch), dir)))
	for _, r := range batch {
		fmt.Printf("  %s → %s\n", r.Original, r.Target)
	}

	if !cli.Clobber {
		fmt.Println(infoStyle.Render("Dry run, nothing renamed. Use --clobber to apply."))
		return nil
	}

	var bar *progressbar.ProgressBar
	if len(batch) > 0 {
		bar = progressbar.Default(int64(len(batch)), "renaming")
	}

	move := func(oldPath, newPath string) error {
		if err := os.Rename(oldPath, newPath); err != nil {
			return err
		}
		if bar != nil {
			_ = bar.Add(1)
		}
		return nil
	}

	if err := photo.Execute(dir, batch, cli.Clobber, move); err != nil {
		return err
	}

	fmt.Println(successStyle.Render(fmt.Sprintf("✅ Renamed %d files.", len(batch))))
	return nil
}

// checkWorkdir verifies the fatal preconditions: dir must exist, be a
// directory, and be writable. Writability is probed with a throwaway
// temp file rather than permission bits.
func checkWorkdir(dir string) error {
	fi, err := os.Stat(dir)
	if os.IsNotExist(err) {
		return fmt.Errorf("directory %s does not exist", dir)
	}
	if err != nil {
		return fmt.Errorf("cannot access directory %s: %w", dir, err)
	}
	if !fi.IsDir() {
		return fmt.Errorf("%s is not a directory", dir)
	}

	probe, err := os.CreateTemp(dir, ".jpeg-rename-probe-*")
	if err != nil {
		return fmt.Errorf("directory %s is not writable", dir)
	}
	probe.Close()
	os.Remove(probe.Name())

	return nil
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("jpeg-rename"),
		kong.Description("Rename JPEG files after their EXIF capture timestamp."))
	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}
