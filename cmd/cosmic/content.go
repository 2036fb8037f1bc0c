package main

import (
	"fmt"
	"os"

	"github.com/prabhsharan1/Cosmic-explorer/pkg/content"
	gsync "github.com/prabhsharan1/Cosmic-explorer/pkg/sync"
)

// cmdContent manages the content override directory.
func cmdContent(s *content.Store, args []string, jsonOut bool) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: cosmic content [init|remote|sync|check|path]")
	}

	switch args[0] {
	case "path":
		if jsonOut {
			return outputJSON(map[string]string{"dir": s.Root})
		}
		fmt.Println(s.Root)
		return nil

	case "init":
		written, err := s.Export()
		if err != nil {
			return err
		}
		_, remote := flagValue(args, "--remote")
		if err := gsync.InitRepo(s.Root, remote, os.Stdout); err != nil {
			return err
		}
		if jsonOut {
			return outputJSON(map[string]interface{}{"dir": s.Root, "written": written})
		}
		fmt.Printf("Exported %d content files to %s\n", len(written), s.Root)
		return nil

	case "remote":
		if len(args) < 2 {
			return fmt.Errorf("usage: cosmic content remote <url>")
		}
		return gsync.InitRepo(s.Root, args[1], os.Stdout)

	case "sync":
		return gsync.SyncRepo(s.Root, os.Stdout)

	case "check":
		cat, err := s.Load()
		if err != nil {
			return err
		}
		if jsonOut {
			return outputJSON(map[string]int{
				"bodies":       len(cat.Bodies),
				"tasks":        len(cat.Tasks),
				"tools":        len(cat.Tools),
				"observations": len(cat.Observations),
				"levels":       len(cat.Levels),
				"achievements": len(cat.Achievements),
				"lessons":      len(cat.Lessons),
			})
		}
		fmt.Printf("Content OK: %d bodies, %d tasks, %d tools, %d lessons\n",
			len(cat.Bodies), len(cat.Tasks), len(cat.Tools), len(cat.Lessons))
		return nil

	default:
		return fmt.Errorf("unknown content command: %s", args[0])
	}
}
