package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"strings"

	"github.com/gookit/color"
	"github.com/leonelquinteros/gotext"

	"darkdepths/pkg/engine/input"
	"darkdepths/pkg/engine/rng"
	"darkdepths/pkg/engine/terminal"
	"darkdepths/pkg/engine/world"
	"darkdepths/pkg/game/bestiary"
	"darkdepths/pkg/game/events"
	"darkdepths/pkg/game/gameplay"
	"darkdepths/pkg/game/generator"
	"darkdepths/pkg/game/persist"
	"darkdepths/pkg/game/state"
	"darkdepths/pkg/game/view"
)

var (
	colorWall    color.Style
	colorFloor   color.Style
	colorDoor    color.Style
	colorFeature color.Style
	colorPlayer  color.Style
	colorMessage color.Style
)

func initColors() {
	colorWall = color.Style{color.FgGray}
	colorFloor = color.Style{color.FgDefault}
	colorDoor = color.Style{color.FgYellow}
	colorFeature = color.Style{color.FgCyan, color.OpBold}
	colorPlayer = color.Style{color.FgGreen, color.OpBold}
	colorMessage = color.Style{color.FgBlue}
}

func initGotext() {
	gotext.Configure("mo/", "en_GB.utf8", "default")
}

func main() {
	mapMode := flag.String("map", "maze", "floor generator: maze or dev")
	seed := flag.Int64("seed", 0, "random seed (0 = time-based)")
	dump := flag.Bool("dump", false, "dump the starting floor map and exit")
	savePath := flag.String("save", "darkdepths.json", "JSON save file path")
	pgDSN := flag.String("pg", "", "PostgreSQL DSN (overrides the JSON store)")
	groupID := flag.String("group", "default", "party group id for saves")
	flag.Parse()

	initGotext()
	initColors()

	src := rng.New(*seed)
	var gen generator.FloorGenerator
	if *mapMode == "dev" {
		gen = &generator.DevMapGenerator{}
	} else {
		gen = &generator.MazeGenerator{Rng: src, MaxDepth: 16}
	}

	queue := &events.Queue{}
	session := state.NewSession(gen, src, queue)
	session.Monsters = bestiary.StaticSource{}

	store := openStore(*pgDSN, *savePath)
	defer store.Close()

	if data := persist.LoadOrNil(store, *groupID); data != nil {
		persist.Restore(session, data)
	} else {
		session.Start()
	}

	if err := gameplay.HydrateEncounters(context.Background(), session.Monsters, session.ActiveFloor()); err != nil {
		log.Printf("encounter hydration interrupted: %v", err)
	}

	if *dump {
		fmt.Print(renderMap(session, true))
		return
	}

	runWalkLoop(session, store, *groupID, queue)
}

func openStore(pgDSN, savePath string) persist.Storage {
	if pgDSN != "" {
		store, err := persist.NewPostgresStore(pgDSN)
		if err == nil {
			return store
		}
		log.Printf("postgres store unavailable, falling back to JSON file: %v", err)
	}
	store, err := persist.NewJSONStore(savePath)
	if err != nil {
		log.Fatalf("cannot open save file %s: %v", savePath, err)
	}
	return store
}

func runWalkLoop(session *state.Session, store persist.Storage, groupID string, queue *events.Queue) {
	restore, err := input.RawMode()
	if err != nil {
		log.Fatalf("cannot enter raw mode: %v", err)
	}
	defer restore()

	fmt.Print("\r\nDark Depths: w/s move, a/d turn, o/c door, f search, u/j floors, m map, q quit\r\n")
	printStatus(session, queue)

	for {
		action, err := input.ReadAction()
		if err != nil {
			return
		}

		switch action {
		case input.ActionQuit:
			saveSession(session, store, groupID)
			fmt.Print("\r\n" + gotext.Get("Farewell, adventurer.") + "\r\n")
			return
		case input.ActionMoveForward:
			if !gameplay.Move(session, gameplay.Forward) {
				session.AddMessage(gotext.Get("Something blocks your way."))
			}
		case input.ActionMoveBackward:
			if !gameplay.Move(session, gameplay.Backward) {
				session.AddMessage(gotext.Get("Something blocks your way."))
			}
		case input.ActionTurnLeft:
			gameplay.Turn(session, gameplay.Left)
		case input.ActionTurnRight:
			gameplay.Turn(session, gameplay.Right)
		case input.ActionOpenDoor:
			gameplay.OpenDoorAhead(session)
		case input.ActionCloseDoor:
			gameplay.CloseDoorAhead(session)
		case input.ActionSearch:
			gameplay.SearchArea(session)
		case input.ActionAscend:
			if gameplay.ChangeFloor(session, gameplay.Up) == gameplay.FloorChangeTown {
				saveSession(session, store, groupID)
				fmt.Print("\r\nYou climb back out to town.\r\n")
				return
			}
		case input.ActionDescend:
			gameplay.ChangeFloor(session, gameplay.Down)
		case input.ActionShowMap:
			fmt.Print(strings.ReplaceAll(renderMap(session, false), "\n", "\r\n"))
		case input.ActionNone:
			continue
		}

		printStatus(session, queue)
	}
}

func saveSession(session *state.Session, store persist.Storage, groupID string) {
	if err := store.SaveDungeon(groupID, persist.Snapshot(session)); err != nil {
		log.Printf("save failed: %v", err)
	}
}

// printStatus shows the pose, a summary of the view cone and anything
// the last action produced.
func printStatus(session *state.Session, queue *events.Queue) {
	info := view.GetViewingInfo(session)

	fmt.Printf("\r\nfloor %d  (%d,%d) facing %s  |  %d walls, %d doors, %d passages, %d monsters, %d objects\r\n",
		session.CurrentFloor, session.X, session.Y, session.Facing,
		len(info.Walls), len(info.Doors), len(info.Passages), len(info.Monsters), len(info.Objects))

	for _, ev := range queue.Drain() {
		fmt.Printf("  %s\r\n", colorFeature.Sprintf("%s at (%d,%d)", ev.Type, ev.X, ev.Y))
	}
	for _, msg := range session.Messages {
		fmt.Printf("  %s\r\n", colorMessage.Sprint(msg))
	}
	session.ClearMessages()
}

// renderMap dumps the active floor as colored ASCII. Unless showAll is
// set, cells still under fog of war print as blanks.
func renderMap(session *state.Session, showAll bool) string {
	f := session.ActiveFloor()
	width, _ := terminal.Size()

	var sb strings.Builder
	for y := 0; y < f.Height; y++ {
		for x := 0; x < f.Width && x < width-1; x++ {
			if x == session.X && y == session.Y {
				sb.WriteString(colorPlayer.Sprint("@"))
				continue
			}
			if !showAll && !session.Discovery.TileExplored(f.Number, x, y) {
				sb.WriteByte(' ')
				continue
			}
			sb.WriteString(tileGlyph(session, f, x, y))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func tileGlyph(session *state.Session, f *world.Floor, x, y int) string {
	t := f.Tile(x, y)
	switch t.Kind {
	case world.KindFloor:
		return colorFloor.Sprint(".")
	case world.KindDoor:
		if t.Open {
			return colorDoor.Sprint("/")
		}
		return colorDoor.Sprint("+")
	case world.KindHiddenDoor, world.KindSecretPassage:
		if session.Discovery.SecretKnown(f.Number, x, y, t.Kind) {
			return colorDoor.Sprint("%")
		}
		return colorWall.Sprint("#")
	case world.KindTrap:
		if session.Discovery.TrapDisarmed(f.Number, x, y) {
			return colorFeature.Sprint("^")
		}
		return colorFloor.Sprint(".")
	case world.KindJackEntry:
		return colorFeature.Sprint("<")
	case world.KindJackDeep:
		return colorFeature.Sprint(">")
	case world.KindExit:
		return colorFeature.Sprint("E")
	case world.KindTreasure:
		return colorFeature.Sprint("$")
	default:
		return colorWall.Sprint("#")
	}
}
