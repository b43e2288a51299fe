package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/keepsake-care/keepsake/internal/memorylog"
	"github.com/spf13/cobra"

	"github.com/google/uuid"
)

var memoriesCmd = &cobra.Command{
	Use:   "memories",
	Short: "Manage the memory board from the command line",
}

var memoriesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List memory board entries, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		entries, err := st.MemoryRepo().List(cmd.Context())
		if err != nil {
			return err
		}
		if len(entries) == 0 {
			fmt.Println("The memory board is empty.")
			return nil
		}
		for _, e := range entries {
			who := e.PersonName
			if who == "" {
				who = "(untagged)"
			}
			fmt.Printf("%-8s %-20s %s\n", e.Kind, who, e.MonthYear())
			if e.Text != "" {
				fmt.Printf("         %s\n", e.RecallPrefix())
			}
		}
		return nil
	},
}

var memoriesAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Pin a memory to the board",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		person, _ := cmd.Flags().GetString("person")
		text, _ := cmd.Flags().GetString("text")
		mediaRef, _ := cmd.Flags().GetString("media-file")
		voice, _ := cmd.Flags().GetBool("voice")

		if strings.TrimSpace(text) == "" && mediaRef == "" {
			return fmt.Errorf("a caption (--text) or a media file (--media-file) is required")
		}

		kind := memorylog.KindPhoto
		if voice {
			kind = memorylog.KindVoice
		}

		e := memorylog.Entry{
			ID:         uuid.New().String(),
			PersonName: strings.TrimSpace(person),
			Text:       strings.TrimSpace(text),
			Kind:       kind,
			MediaRef:   mediaRef,
			CreatedAt:  time.Now(),
		}
		if err := st.MemoryRepo().Add(cmd.Context(), e); err != nil {
			return err
		}
		fmt.Println("Memory pinned to the board.")
		return nil
	},
}

func init() {
	memoriesAddCmd.Flags().String("person", "", "Who the memory is about")
	memoriesAddCmd.Flags().String("text", "", "Caption or transcript")
	memoriesAddCmd.Flags().String("media-file", "", "Photo or recording file name in the media directory")
	memoriesAddCmd.Flags().Bool("voice", false, "Record as a voice note instead of a photo")

	memoriesCmd.AddCommand(memoriesListCmd)
	memoriesCmd.AddCommand(memoriesAddCmd)
}
