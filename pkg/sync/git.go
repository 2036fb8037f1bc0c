package sync

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"time"
)

// ErrNotRepo is returned when the content directory has no git repository.
var ErrNotRepo = errors.New("content directory is not a git repository, run 'cosmic content init' first")

// IsRepo reports whether dir holds a git repository.
func IsRepo(dir string) bool {
	_, err := os.Stat(filepath.Join(dir, ".git"))
	return err == nil
}

// InitRepo makes the content directory a git repository and, if remote is
// set, points origin at it. Progress goes to out.
func InitRepo(dir, remote string, out io.Writer) error {
	git := command(dir, out)

	if !IsRepo(dir) {
		if err := git("init", "-q").Run(); err != nil {
			return fmt.Errorf("git init: %w", err)
		}
		fmt.Fprintf(out, "Initialized content repository in %s\n", dir)
	}

	if remote == "" {
		fmt.Fprintln(out, "No remote specified. Use --remote <url> to set one.")
		return nil
	}

	// Remove existing origin first (ignore error if doesn't exist)
	git("remote", "remove", "origin").Run()

	if err := git("remote", "add", "origin", remote).Run(); err != nil {
		return fmt.Errorf("setting remote: %w", err)
	}
	fmt.Fprintf(out, "Remote set to: %s\n", remote)
	return nil
}

// SyncRepo synchronizes the content directory with its remote.
// Strategy: commit local changes, rebase, fallback to merge, push.
func SyncRepo(dir string, out io.Writer) error {
	if !IsRepo(dir) {
		return ErrNotRepo
	}
	git := command(dir, out)

	// 1. Stage and commit any uncommitted local changes
	fmt.Fprintln(out, "Staging changes...")
	git("add", "-A").Run()
	if err := git("diff", "--cached", "--quiet").Run(); err != nil {
		msg := "content sync " + time.Now().Format("2006-01-02 15:04:05")
		git("commit", "-q", "-m", msg).Run()
	}

	// 2. Try pull --rebase
	fmt.Fprintln(out, "Pulling...")
	if err := git("pull", "--rebase").Run(); err != nil {
		// 3. Rebase failed, abort and try merge
		fmt.Fprintln(out, "Rebase failed, trying merge...")
		git("rebase", "--abort").Run()

		if err := git("pull", "--no-rebase").Run(); err != nil {
			git("merge", "--abort").Run()
			return fmt.Errorf("sync failed: could not rebase or merge. Resolve conflicts manually")
		}
	}

	// 4. Push
	fmt.Fprintln(out, "Pushing...")
	if err := git("push").Run(); err != nil {
		return fmt.Errorf("push failed: %w", err)
	}

	fmt.Fprintln(out, "Sync complete.")
	return nil
}

func command(dir string, out io.Writer) func(args ...string) *exec.Cmd {
	return func(args ...string) *exec.Cmd {
		cmd := exec.Command("git", append([]string{"-C", dir}, args...)...)
		cmd.Stdout = out
		cmd.Stderr = out
		return cmd
	}
}
