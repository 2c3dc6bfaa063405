package calpro

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/rajeshthapaliya/cross-platform-calorie-calc/internal/db"
	"github.com/rajeshthapaliya/cross-platform-calorie-calc/internal/energy"
	"github.com/rajeshthapaliya/cross-platform-calorie-calc/internal/model"
	"github.com/rajeshthapaliya/cross-platform-calorie-calc/internal/service"

	"github.com/spf13/cobra"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Manage profiles",
}

var (
	profileSaveName string
	profileGender   string
	profileAge      int
	profileHeight   float64
	profileWeight   float64
	profileActivity string
	profileGoal     string
	profileProtein  int
	profileCarb     int
	profileFat      int
)

var profileSaveCmd = &cobra.Command{
	Use:   "save",
	Short: "Create or update a profile by name",
	Long: `Create a profile, or update the one whose name matches case-insensitively.
When updating, only the flags given change the stored values. Protein, carb and
fat percentages must add up to 100. The saved profile becomes the current one.`,
	Example: `  calpro profile save --name alice --gender female --age 31 --height 165 --weight 60
  calpro profile save --name alice --goal lose`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *db.DB) error {
			in, err := profileSaveInput(cmd, sqldb)
			if err != nil {
				return err
			}
			p, err := service.SaveProfile(sqldb, in)
			if err != nil {
				return err
			}
			if err := service.UseProfile(sqldb, p.ID); err != nil {
				return err
			}
			s := service.NewSession(cfg.Defaults.TargetKcal)
			s.Select(p)
			log.Debugw("profile saved", "id", p.ID, "name", p.Name)
			fmt.Fprintf(cmd.OutOrStdout(), "Saved profile %q (id %d)\n", p.Name, p.ID)
			fmt.Fprintf(cmd.OutOrStdout(), "Daily target: %s\n", kcal(s.Target))
			return nil
		})
	},
}

// profileSaveInput starts from the stored profile when the name exists (blank-form
// defaults otherwise) and applies only the flags that were set.
func profileSaveInput(cmd *cobra.Command, sqldb *db.DB) (service.ProfileInput, error) {
	base := energy.DefaultInput()
	if strings.TrimSpace(profileSaveName) != "" {
		existing, err := service.GetProfileByName(sqldb, profileSaveName)
		switch {
		case err == nil:
			base = existing.CalcInput()
		case !errors.Is(err, service.ErrProfileNotFound):
			return service.ProfileInput{}, err
		}
	}
	in := service.ProfileInput{
		Name:     profileSaveName,
		Gender:   string(base.Gender),
		Age:      base.AgeYears,
		HeightCM: base.HeightCM,
		WeightKG: base.WeightKG,
		Activity: string(base.Activity),
		Goal:     string(base.Goal),
		Macros:   base.Macros,
	}
	flags := cmd.Flags()
	if flags.Changed("gender") {
		in.Gender = profileGender
	}
	if flags.Changed("age") {
		in.Age = profileAge
	}
	if flags.Changed("height") {
		in.HeightCM = profileHeight
	}
	if flags.Changed("weight") {
		in.WeightKG = profileWeight
	}
	if flags.Changed("activity") {
		in.Activity = profileActivity
	}
	if flags.Changed("goal") {
		in.Goal = profileGoal
	}
	if flags.Changed("protein") {
		in.Macros.Protein = profileProtein
	}
	if flags.Changed("carb") {
		in.Macros.Carb = profileCarb
	}
	if flags.Changed("fat") {
		in.Macros.Fat = profileFat
	}
	return in, nil
}

var profileNewCmd = &cobra.Command{
	Use:   "new <name>",
	Short: "Create a profile with default measurements and make it current",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *db.DB) error {
			p, err := service.CreateProfile(sqldb, args[0])
			if err != nil {
				return err
			}
			if err := service.UseProfile(sqldb, p.ID); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created profile %q (id %d)\n", p.Name, p.ID)
			return nil
		})
	},
}

var profileUseCmd = &cobra.Command{
	Use:   "use <name>",
	Short: "Make a profile the current one for later commands",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *db.DB) error {
			p, err := service.GetProfileByName(sqldb, args[0])
			if err != nil {
				return err
			}
			if err := service.UseProfile(sqldb, p.ID); err != nil {
				return err
			}
			s := service.NewSession(cfg.Defaults.TargetKcal)
			s.Select(p)
			fmt.Fprintf(cmd.OutOrStdout(), "Using profile %q (target %s)\n", p.Name, kcal(s.Target))
			return nil
		})
	},
}

var profileListCmd = &cobra.Command{
	Use:   "list",
	Short: "List profiles",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSession(func(sqldb *db.DB, s *service.Session) error {
			names, err := service.ListProfileNames(sqldb)
			if err != nil {
				return err
			}
			if len(names) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No profiles yet. Create one with `calpro profile save --name ...`.")
				return nil
			}
			for _, name := range names {
				marker := " "
				if s.Profile != nil && s.Profile.Name == name {
					marker = "*"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", marker, name)
			}
			return nil
		})
	},
}

var profileShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the current profile",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSession(func(sqldb *db.DB, s *service.Session) error {
			p, err := s.RequireProfile()
			if err != nil {
				return err
			}
			printProfile(cmd.OutOrStdout(), p)
			fmt.Fprintf(cmd.OutOrStdout(), "Target:   %s\n", kcal(s.Target))
			return nil
		})
	},
}

func printProfile(w io.Writer, p *model.Profile) {
	fmt.Fprintf(w, "Profile:  %s (id %d)\n", p.Name, p.ID)
	fmt.Fprintf(w, "Gender:   %s\n", p.Gender)
	fmt.Fprintf(w, "Age:      %d\n", p.Age)
	fmt.Fprintf(w, "Height:   %.1f cm\n", p.HeightCM)
	fmt.Fprintf(w, "Weight:   %.1f kg\n", p.WeightKG)
	fmt.Fprintf(w, "Activity: %s\n", p.Activity)
	fmt.Fprintf(w, "Goal:     %s\n", p.Goal)
	fmt.Fprintf(w, "Macros:   P %d%% | C %d%% | F %d%%\n", p.Macros.Protein, p.Macros.Carb, p.Macros.Fat)
}

func init() {
	rootCmd.AddCommand(profileCmd)
	profileCmd.AddCommand(profileSaveCmd, profileNewCmd, profileUseCmd, profileListCmd, profileShowCmd)

	def := energy.DefaultInput()
	profileSaveCmd.Flags().StringVar(&profileSaveName, "name", "", "Profile name (required)")
	profileSaveCmd.Flags().StringVar(&profileGender, "gender", string(def.Gender), "male or female")
	profileSaveCmd.Flags().IntVar(&profileAge, "age", def.AgeYears, "Age in years")
	profileSaveCmd.Flags().Float64Var(&profileHeight, "height", def.HeightCM, "Height in cm")
	profileSaveCmd.Flags().Float64Var(&profileWeight, "weight", def.WeightKG, "Weight in kg")
	profileSaveCmd.Flags().StringVar(&profileActivity, "activity", string(def.Activity), "Sedentary, Light, Moderate, Active or Very Active")
	profileSaveCmd.Flags().StringVar(&profileGoal, "goal", string(def.Goal), "lose, maintain or gain")
	profileSaveCmd.Flags().IntVar(&profileProtein, "protein", def.Macros.Protein, "Protein % of calories")
	profileSaveCmd.Flags().IntVar(&profileCarb, "carb", def.Macros.Carb, "Carbohydrate % of calories")
	profileSaveCmd.Flags().IntVar(&profileFat, "fat", def.Macros.Fat, "Fat % of calories")
}
