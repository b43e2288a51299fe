package cmd

import (
	"fmt"
	"strings"

	"github.com/keepsake-care/keepsake/internal/profile"
	"github.com/spf13/cobra"

	"github.com/google/uuid"
)

var peopleCmd = &cobra.Command{
	Use:   "people",
	Short: "Manage the family circle from the command line",
}

var peopleListCmd = &cobra.Command{
	Use:   "list",
	Short: "List everyone in the family circle",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		persons, err := st.ProfileRepo().List(cmd.Context())
		if err != nil {
			return err
		}
		if len(persons) == 0 {
			fmt.Println("No one in the family circle yet.")
			return nil
		}
		for _, p := range persons {
			var details []string
			if p.Relationship != "" {
				details = append(details, p.Relationship)
			}
			if p.Location != "" {
				details = append(details, p.Location)
			}
			line := p.Name
			if len(details) > 0 {
				line += "  (" + strings.Join(details, ", ") + ")"
			}
			fmt.Println(line)
		}
		return nil
	},
}

var peopleAddCmd = &cobra.Command{
	Use:   "add NAME",
	Short: "Add a person to the family circle",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		relationship, _ := cmd.Flags().GetString("relationship")
		location, _ := cmd.Flags().GetString("location")
		funFact, _ := cmd.Flags().GetString("fun-fact")
		photo, _ := cmd.Flags().GetString("photo")

		p := profile.Person{
			ID:           uuid.New().String(),
			Name:         strings.TrimSpace(args[0]),
			Relationship: relationship,
			Location:     location,
			FunFact:      funFact,
			PhotoRef:     photo,
		}
		if p.Name == "" {
			return fmt.Errorf("name must not be empty")
		}
		if err := st.ProfileRepo().Add(cmd.Context(), p); err != nil {
			return err
		}
		fmt.Printf("Added %s.\n", p.Name)
		return nil
	},
}

func init() {
	peopleAddCmd.Flags().String("relationship", "", "Relationship to the user, e.g. Daughter")
	peopleAddCmd.Flags().String("location", "", "Where the person lives")
	peopleAddCmd.Flags().String("fun-fact", "", "A fun fact about the person")
	peopleAddCmd.Flags().String("photo", "", "Photo file name in the media directory")

	peopleCmd.AddCommand(peopleListCmd)
	peopleCmd.AddCommand(peopleAddCmd)
}
