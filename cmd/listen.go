package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"strings"
	"sync"
	"time"

	"github.com/bep/debounce"
	"github.com/jsphweid/munotes/chord"
	"github.com/jsphweid/munotes/util"
	"github.com/spf13/cobra"
	"gitlab.com/gomidi/midi/v2"
	_ "gitlab.com/gomidi/midi/v2/drivers/rtmididrv" // autoregisters driver
)

var listenPort int

func init() {
	listenCmd.Flags().IntVarP(&listenPort, "port", "p", 0, "MIDI input port number")
	rootCmd.AddCommand(listenCmd)
}

var listenCmd = &cobra.Command{
	Use:   "listen",
	Short: "Names the chord held on a MIDI keyboard",
	Long:  `Listens to a MIDI input port and prints the chord whenever the held keys settle.`,
	Run: func(cmd *cobra.Command, args []string) {
		listen(listenPort)
	},
}

// heldKeys is the set of keys currently down. The MIDI driver calls in from
// its own goroutine.
type heldKeys struct {
	mu      sync.Mutex
	pressed map[uint8]bool
	lastKey string
}

func (h *heldKeys) press(key uint8) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.pressed[key] = true
}

func (h *heldKeys) release(key uint8) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.pressed, key)
}

// settle returns the chords for the held keys, or ok=false if they have not
// changed since the last call.
func (h *heldKeys) settle() (keys []uint8, chords []string, ok bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	keys = util.GetKeys(h.pressed)
	chordKey := chord.CreateChordKey(keys)
	if chordKey == h.lastKey {
		return nil, nil, false
	}
	h.lastKey = chordKey
	return keys, chord.Identify(keys), true
}

func listen(port int) {
	defer midi.CloseDriver()
	in, err := midi.InPort(port)
	if err != nil {
		fmt.Printf("can't find MIDI input port %d\n", port)
		return
	}

	held := &heldKeys{pressed: make(map[uint8]bool)}
	debounced := debounce.New(time.Duration(cfg.DebounceMs) * time.Millisecond)
	report := func() {
		keys, chords, ok := held.settle()
		if !ok || len(keys) == 0 {
			return
		}
		if len(chords) == 0 {
			fmt.Printf("%v: ?\n", keys)
			return
		}
		fmt.Printf("%v: %v\n", keys, strings.Join(chords, " | "))
	}

	stop, err := midi.ListenTo(in, func(msg midi.Message, timestampms int32) {
		var ch, key, vel uint8
		switch {
		case msg.GetNoteStart(&ch, &key, &vel):
			held.press(key)
			debounced(report)
		case msg.GetNoteEnd(&ch, &key):
			held.release(key)
			debounced(report)
		default:
			// ignore
		}
	})
	if err != nil {
		fmt.Printf("ERROR: %s\n", err)
		return
	}
	defer stop()

	fmt.Printf("listening on %v, ctrl-c to stop\n", in)
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt)
	<-sig
}
