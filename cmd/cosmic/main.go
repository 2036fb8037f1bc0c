package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/prabhsharan1/Cosmic-explorer/pkg/content"
	"github.com/prabhsharan1/Cosmic-explorer/pkg/mission"
	"github.com/prabhsharan1/Cosmic-explorer/pkg/nav"
	"github.com/prabhsharan1/Cosmic-explorer/pkg/tui"
)

const usage = "Usage: cosmic [bodies|route|tasks|tools|learn|search|levels|achievements|play|content]"

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	args := os.Args[1:]
	dataDir := content.ResolveDataDir(args)
	args, _ = flagValue(args, "--dir")

	jsonOutput := hasFlag(args, "--json")
	args = removeFlag(args, "--json")
	args, level := flagValue(args, "--level")
	args, seedArg := flagValue(args, "--seed")

	var seed uint64
	if seedArg != "" {
		n, err := strconv.ParseUint(seedArg, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid --seed %q: %w", seedArg, err)
		}
		seed = n
	}

	s, err := content.NewStore(dataDir)
	if err != nil {
		return err
	}

	// content commands must work even when the override files are broken.
	if len(args) > 0 && args[0] == "content" {
		return cmdContent(s, args[1:], jsonOutput)
	}

	cat, err := s.Load()
	if err != nil {
		return err
	}

	if len(args) == 0 {
		return runTUI(s, cat, tui.Options{
			Config: mission.DefaultConfig(),
			Seed:   seed,
			Level:  level,
		})
	}

	switch args[0] {
	case "bodies":
		return cmdBodies(cat, jsonOutput)
	case "route":
		if len(args) < 3 {
			return fmt.Errorf("usage: cosmic route <from> <to>")
		}
		return cmdRoute(cat, args[1], args[2], jsonOutput)
	case "tasks":
		return cmdTasks(cat, jsonOutput)
	case "tools":
		return cmdTools(cat, jsonOutput)
	case "learn":
		if len(args) < 2 {
			return fmt.Errorf("usage: cosmic learn <body>")
		}
		return cmdLearn(cat, args[1], jsonOutput)
	case "search":
		if len(args) < 2 {
			return fmt.Errorf("usage: cosmic search <query>")
		}
		return cmdSearch(cat, strings.Join(args[1:], " "), jsonOutput)
	case "levels":
		return cmdLevels(cat, jsonOutput)
	case "achievements":
		return cmdAchievements(cat, jsonOutput)
	case "play":
		if len(args) < 2 {
			return fmt.Errorf("usage: cosmic play [--level id] [--seed n] <body|tool@body>...")
		}
		return cmdPlay(cat, level, seed, args[1:], jsonOutput)
	default:
		return fmt.Errorf("unknown command: %s\n%s", args[0], usage)
	}
}

func hasFlag(args []string, flag string) bool {
	for _, a := range args {
		if a == flag {
			return true
		}
	}
	return false
}

func removeFlag(args []string, flag string) []string {
	var result []string
	for _, a := range args {
		if a != flag {
			result = append(result, a)
		}
	}
	return result
}

// flagValue removes a "flag value" pair from args and returns the value.
func flagValue(args []string, flag string) ([]string, string) {
	var result []string
	value := ""
	for i := 0; i < len(args); i++ {
		if args[i] == flag && i+1 < len(args) {
			value = args[i+1]
			i++
			continue
		}
		result = append(result, args[i])
	}
	return result, value
}

func runTUI(s *content.Store, cat *content.Catalog, opts tui.Options) error {
	if path := os.Getenv("COSMIC_DEBUG"); path != "" {
		f, err := tea.LogToFile(path, "cosmic")
		if err != nil {
			return fmt.Errorf("opening debug log: %w", err)
		}
		defer f.Close()
		opts.Logger = log.Default()
	}

	m, err := tui.NewModel(s, cat, opts)
	if err != nil {
		return err
	}
	p := tea.NewProgram(m, tea.WithAltScreen())

	m.Pump().Start(p.Send)
	defer m.Pump().Stop()

	// Start file watcher
	cleanup, err := tui.StartWatcher(s.Root, p.Send)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: file watcher failed: %v\n", err)
	} else {
		defer cleanup()
	}

	final, err := p.Run()
	if fm, ok := final.(tui.Model); ok {
		fm.Mission().Close()
	}
	return err
}

// CLI Commands

func cmdBodies(cat *content.Catalog, jsonOut bool) error {
	if jsonOut {
		return outputJSON(cat.Bodies)
	}

	for _, b := range cat.Bodies {
		hazard := ""
		if b.Hazard != content.HazardNone {
			hazard = " ⚠ " + string(b.Hazard)
		}
		fmt.Printf("%-8s %s %-8s %-6s d=%-4g → %s%s\n",
			b.ID, b.Emoji, b.Name, b.Kind, b.Distance, strings.Join(b.CanTravelTo, ", "), hazard)
	}
	return nil
}

func cmdRoute(cat *content.Catalog, from, to string, jsonOut bool) error {
	src, ok := cat.ResolveBody(from)
	if !ok {
		return fmt.Errorf("unknown body: %s", from)
	}
	dst, ok := cat.ResolveBody(to)
	if !ok {
		return fmt.Errorf("unknown body: %s", to)
	}

	route := nav.New(cat.Bodies).Route(src.ID, dst.ID)
	if jsonOut {
		return outputJSON(route)
	}

	legal := "no direct route"
	if route.Legal {
		legal = "direct route"
	}
	fmt.Printf("%s → %s: %d fuel (%s)\n", src.Name, dst.Name, route.Cost, legal)
	return nil
}

func cmdTasks(cat *content.Catalog, jsonOut bool) error {
	if jsonOut {
		return outputJSON(cat.Tasks)
	}

	for _, t := range cat.Tasks {
		where := t.Target
		if t.Requirement != nil {
			where = fmt.Sprintf("%s %d", t.Requirement.Kind, t.Requirement.Count)
		}
		level := ""
		if t.LevelOnly {
			level = " [level]"
		}
		fmt.Printf("%-24s %-34s %-11s %-18s +%d pts%s\n", t.ID, t.Name, t.Type, where, t.Reward.Points, level)
	}
	return nil
}

func cmdTools(cat *content.Catalog, jsonOut bool) error {
	if jsonOut {
		return outputJSON(cat.Tools)
	}

	for _, t := range cat.Tools {
		fmt.Printf("%-16s %-24s %d fuel  best for: %s\n", t.ID, t.Name, t.FuelCost, strings.Join(t.RecommendedFor, ", "))
	}
	return nil
}

func cmdLearn(cat *content.Catalog, name string, jsonOut bool) error {
	b, ok := cat.ResolveBody(name)
	if !ok {
		return fmt.Errorf("unknown body: %s", name)
	}
	l, ok := cat.Lesson(b.ID)
	if !ok {
		return fmt.Errorf("no lesson for %s", b.Name)
	}

	if jsonOut {
		return outputJSON(l)
	}

	out, err := glamour.Render(l.Markdown(), "dark")
	if err != nil {
		out = l.Markdown()
	}
	fmt.Print(out)
	return nil
}

func cmdSearch(cat *content.Catalog, query string, jsonOut bool) error {
	matches := content.SearchLessons(cat, query)

	if jsonOut {
		return outputJSON(matches)
	}

	if len(matches) == 0 {
		fmt.Println("No matches found.")
		return nil
	}

	for _, l := range matches {
		fmt.Printf("%s (%s)\n", l.Title, l.Body)
	}
	return nil
}

func cmdLevels(cat *content.Catalog, jsonOut bool) error {
	if jsonOut {
		return outputJSON(cat.Levels)
	}

	for i, l := range cat.Levels {
		unlock := "unlocked"
		if l.Unlock != "" {
			unlock = "after " + l.Unlock
		}
		fmt.Printf("%d. %-32s %-16s %s\n", i+1, l.Name, l.ID, unlock)
		fmt.Printf("   %s\n", l.Description)
	}
	return nil
}

func cmdAchievements(cat *content.Catalog, jsonOut bool) error {
	if jsonOut {
		return outputJSON(cat.Achievements)
	}

	for _, a := range cat.Achievements {
		fmt.Printf("%s %-22s %3d pts  %s\n", a.Icon, a.Name, a.Points, a.Description)
	}
	return nil
}

func cmdPlay(cat *content.Catalog, level string, seed uint64, steps []string, jsonOut bool) error {
	var opts []mission.Option
	if level != "" {
		opts = append(opts, mission.WithLevel(level))
	}
	if seed != 0 {
		opts = append(opts, mission.WithSeed(seed))
	}
	var notify mission.Notifier
	if !jsonOut {
		notify = func(e mission.Event) {
			fmt.Println(describeEvent(e))
		}
	}

	report, err := playItinerary(cat, mission.DefaultConfig(), steps, notify, opts...)
	if err != nil {
		return err
	}

	if jsonOut {
		return outputJSON(report)
	}

	for _, r := range report.Rejected {
		fmt.Printf("✗ %s\n", r)
	}
	final := report.Final
	fmt.Printf("\n%s at %s  fuel %d  health %d  score %d\n",
		final.Status, final.CurrentLocation, final.Fuel, final.Health, final.Score)
	if final.FailReason != "" {
		fmt.Printf("failed: %s\n", final.FailReason)
	}
	return nil
}

func describeEvent(e mission.Event) string {
	detail := e.Body
	switch e.Kind {
	case mission.EventTravelStarted:
		detail = fmt.Sprintf("%s (%d fuel)", e.Body, e.Amount)
	case mission.EventTaskCompleted, mission.EventNewTaskOffered:
		detail = e.TaskID
	case mission.EventShipDamaged:
		detail = fmt.Sprintf("%s -%d health", e.Cause, e.Amount)
	case mission.EventMissionFailed:
		detail = e.Reason
	case mission.EventScanStarted:
		detail = e.Tool + "@" + e.Body
	case mission.EventObservationCompleted:
		detail = e.Tool + "@" + e.Body
		if e.Observation != nil && len(e.Observation.Data) > 0 {
			detail += ": " + e.Observation.Data[0]
		}
	case mission.EventKnowledgeUnlocked:
		detail = e.Knowledge
	case mission.EventAchievementUnlocked:
		detail = fmt.Sprintf("%s +%d", e.Achievement, e.Amount)
	}
	return fmt.Sprintf("%-22s %s", e.Kind, detail)
}

// JSON helpers

func outputJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
