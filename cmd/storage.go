package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var favoritesCmd = &cobra.Command{
	Use:   "favorites",
	Short: "Manage saved articles",
}

var favoritesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved article ids",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openSession()
		if err != nil {
			return err
		}
		defer s.close()

		records := s.favorites.List()
		if len(records) == 0 {
			fmt.Println("No favorites saved.")
			return nil
		}
		for _, r := range records {
			fmt.Printf("%s  saved %s\n", r.ID, r.SavedAt.Format("2006-01-02 15:04"))
		}
		return nil
	},
}

var favoritesClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove every saved article",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openSession()
		if err != nil {
			return err
		}
		defer s.close()

		s.favorites.Clear()
		fmt.Println("Favorites cleared.")
		return nil
	},
}

var storageCmd = &cobra.Command{
	Use:   "storage",
	Short: "Inspect or reset local storage",
}

var storageClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove everything the app has persisted",
	Long:  "Delete the cached collection, favorites and preferences. Only keys in the app's namespace are touched.",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openSession()
		if err != nil {
			return err
		}
		defer s.close()

		s.kv.ClearNamespace()
		fmt.Println("Storage cleared.")
		return nil
	},
}

func init() {
	favoritesCmd.AddCommand(favoritesListCmd)
	favoritesCmd.AddCommand(favoritesClearCmd)
	storageCmd.AddCommand(storageClearCmd)
}
