package cmd

import (
	"fmt"

	"github.com/coltab/coltab/pkg/profile"
	"github.com/coltab/coltab/pkg/util"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

// ProfilesSaveInput is the payload for saving a named preset.
type ProfilesSaveInput struct {
	Name           string
	Widths         string
	Layout         string
	Delimiter      string
	BreakLongWords bool
}

// ProfilesDeleteInput mirrors ProfilesCmd.Delete's confirmation handling.
type ProfilesDeleteInput struct {
	Name        string
	SkipConfirm bool
}

// ProfilesCmd handles profile-store operations independent of cobra.
type ProfilesCmd struct {
	store *profile.Store
}

func (p ProfilesCmd) Save(in ProfilesSaveInput) error {
	prof := profile.Profile{
		Name:           in.Name,
		Widths:         in.Widths,
		Layout:         in.Layout,
		Delimiter:      in.Delimiter,
		BreakLongWords: in.BreakLongWords,
	}
	if err := p.store.Save(prof); err != nil {
		return util.Inputf("saving profile: %s", err)
	}
	pterm.Success.Printf("Saved profile: %s\n", in.Name)
	return nil
}

func (p ProfilesCmd) List() error {
	items, err := p.store.List()
	if err != nil {
		return util.Inputf("listing profiles: %s", err)
	}
	if len(items) == 0 {
		pterm.Info.Println("No profiles found")
		return nil
	}
	rows := pterm.TableData{{"Name", "Widths", "Layout", "Delimiter", "Break Long Words"}}
	for _, prof := range items {
		rows = append(rows, []string{
			prof.Name,
			util.OrDash(prof.Widths),
			util.OrDash(prof.Layout),
			util.OrDash(prof.Delimiter),
			fmt.Sprintf("%t", prof.BreakLongWords),
		})
	}
	printTableNoPad(rows, true)
	return nil
}

func (p ProfilesCmd) Show(name string) error {
	prof, ok, err := p.store.Get(name)
	if err != nil {
		return util.Inputf("loading profile %q: %s", name, err)
	}
	if !ok {
		pterm.Error.Printf("Profile %q not found\n", name)
		return nil
	}
	rows := pterm.TableData{{"Property", "Value"}}
	rows = append(rows, []string{"Name", prof.Name})
	rows = append(rows, []string{"Widths", util.OrDash(prof.Widths)})
	rows = append(rows, []string{"Layout", util.OrDash(prof.Layout)})
	rows = append(rows, []string{"Delimiter", util.OrDash(prof.Delimiter)})
	rows = append(rows, []string{"Break Long Words", fmt.Sprintf("%t", prof.BreakLongWords)})
	printTableNoPad(rows, true)
	return nil
}

func (p ProfilesCmd) Delete(in ProfilesDeleteInput) error {
	if !in.SkipConfirm {
		_, ok, err := p.store.Get(in.Name)
		if err != nil {
			return util.Inputf("loading profile %q: %s", in.Name, err)
		}
		if !ok {
			pterm.Error.Printf("Profile %q not found\n", in.Name)
			return nil
		}
		msg := fmt.Sprintf("Are you sure you want to delete profile %q?", in.Name)
		pterm.DefaultInteractiveConfirm.DefaultText = msg
		ok, _ = pterm.DefaultInteractiveConfirm.Show()
		if !ok {
			pterm.Info.Println("Deletion cancelled")
			return nil
		}
	}

	if err := p.store.Delete(in.Name); err != nil {
		return util.Inputf("deleting profile %q: %s", in.Name, err)
	}
	pterm.Success.Printf("Deleted profile: %s\n", in.Name)
	return nil
}

// --- Cobra wiring ---

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Manage saved planner presets",
	Long:  "Commands for saving, listing and removing named presets of -W/-L/-d/-b flags.",
}

var profileSaveCmd = &cobra.Command{
	Use:   "save <name>",
	Short: "Save the current flags as a named preset",
	Args:  cobra.ExactArgs(1),
	RunE:  runProfileSave,
}

var profileListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved presets",
	Args:  cobra.NoArgs,
	RunE:  runProfileList,
}

var profileShowCmd = &cobra.Command{
	Use:   "show <name>",
	Short: "Show a saved preset",
	Args:  cobra.ExactArgs(1),
	RunE:  runProfileShow,
}

var profileDeleteCmd = &cobra.Command{
	Use:   "delete <name>",
	Short: "Delete a saved preset",
	Args:  cobra.ExactArgs(1),
	RunE:  runProfileDelete,
}

func init() {
	profileCmd.AddCommand(profileSaveCmd)
	profileCmd.AddCommand(profileListCmd)
	profileCmd.AddCommand(profileShowCmd)
	profileCmd.AddCommand(profileDeleteCmd)

	profileSaveCmd.Flags().StringP("widths", "W", "", "comma-separated widths, each a positive integer or '-'")
	profileSaveCmd.Flags().StringP("layout", "L", "grid", "output layout")
	profileSaveCmd.Flags().StringP("delimiter", "d", "\t", "single-character input field delimiter")
	profileSaveCmd.Flags().BoolP("break-long-words", "b", false, "break a single token wider than its column")
	profileDeleteCmd.Flags().BoolP("yes", "y", false, "skip confirmation prompt")
}

func openProfileStore() (*profile.Store, error) {
	path, err := profile.DefaultPath()
	if err != nil {
		return nil, util.Inputf("resolving profile store: %s", err)
	}
	return profile.Open(path), nil
}

func runProfileSave(cmd *cobra.Command, args []string) error {
	store, err := openProfileStore()
	if err != nil {
		return err
	}
	widths, _ := cmd.Flags().GetString("widths")
	layout, _ := cmd.Flags().GetString("layout")
	delimiter, _ := cmd.Flags().GetString("delimiter")
	breakLongWords, _ := cmd.Flags().GetBool("break-long-words")
	p := ProfilesCmd{store: store}
	return p.Save(ProfilesSaveInput{
		Name:           args[0],
		Widths:         widths,
		Layout:         layout,
		Delimiter:      delimiter,
		BreakLongWords: breakLongWords,
	})
}

func runProfileList(cmd *cobra.Command, args []string) error {
	store, err := openProfileStore()
	if err != nil {
		return err
	}
	return ProfilesCmd{store: store}.List()
}

func runProfileShow(cmd *cobra.Command, args []string) error {
	store, err := openProfileStore()
	if err != nil {
		return err
	}
	return ProfilesCmd{store: store}.Show(args[0])
}

func runProfileDelete(cmd *cobra.Command, args []string) error {
	store, err := openProfileStore()
	if err != nil {
		return err
	}
	skip, _ := cmd.Flags().GetBool("yes")
	return ProfilesCmd{store: store}.Delete(ProfilesDeleteInput{Name: args[0], SkipConfirm: skip})
}
