package cmd

import (
	"fmt"
	"math/rand"
	"sort"
	"sync"
	"time"

	"github.com/bep/debounce"
	"github.com/spf13/cobra"
	"gitlab.com/gomidi/midi/v2"
	_ "gitlab.com/gomidi/midi/v2/drivers/rtmididrv" // autoregisters driver

	"github.com/jsphweid/chordcoach/chord"
	chordmidi "github.com/jsphweid/chordcoach/midi"
	"github.com/jsphweid/chordcoach/model"
	"github.com/jsphweid/chordcoach/util"
)

func init() {
	rootCmd.AddCommand(listenCmd)
}

var listenCmd = &cobra.Command{
	Use:   "listen [difficulty]",
	Short: "Runs a practice drill against a MIDI keyboard",
	Long:  `Runs a practice drill against a MIDI keyboard`,
	Run: func(cmd *cobra.Command, args []string) {
		difficulty := "level1"
		if len(args) == 1 {
			difficulty = args[0]
		}
		listen(difficulty)
	},
}

func listen(difficulty string) {
	defer midi.CloseDriver()

	LoadRegistry()
	chords := registry.ChordsFor(difficulty)
	if len(chords) == 0 {
		fmt.Printf("No chords for difficulty %v\n", difficulty)
		return
	}

	in, err := midi.InPort(0)
	if err != nil {
		fmt.Println("can't find a MIDI input port")
		return
	}

	rand.Seed(time.Now().UnixNano())
	target := chords[rand.Intn(len(chords))]
	fmt.Printf("Play: %v\n", target.Name)

	// the driver callback and the debounce timer run on different
	// goroutines, both touching pressed
	var mu sync.Mutex
	pressed := make(map[uint8]bool)

	// wait for held notes to settle before judging the answer, otherwise
	// a rolled chord gets rejected key by key
	debounced := debounce.New(200 * time.Millisecond)

	evaluate := func() {
		mu.Lock()
		defer mu.Unlock()

		nums := util.GetKeys(pressed)
		if len(nums) == 0 {
			return
		}
		sort.Slice(nums, func(i, j int) bool { return nums[i] < nums[j] })
		var notes []model.NoteString
		for _, n := range nums {
			notes = append(notes, chordmidi.NumberToNoteString(n))
		}
		if chord.CheckMatch(notes, target.Notes, &target) {
			fmt.Printf("Correct: %v\n", target.Name)
			target = chords[rand.Intn(len(chords))]
			fmt.Printf("Play: %v\n", target.Name)
		}
	}

	_, err = midi.ListenTo(in, func(msg midi.Message, timestampms int32) {
		var ch, key, vel uint8
		switch {
		case msg.GetNoteStart(&ch, &key, &vel):
			mu.Lock()
			pressed[key] = true
			mu.Unlock()
			debounced(evaluate)
		case msg.GetNoteEnd(&ch, &key):
			mu.Lock()
			delete(pressed, key)
			mu.Unlock()
		default:
			// ignore
		}
	})

	if err != nil {
		fmt.Printf("ERROR: %s\n", err)
		return
	}

	// drill runs until the process is killed
	select {}
}
