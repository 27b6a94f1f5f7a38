package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"notes-client/internal/model"
	"notes-client/internal/note"
)

// NewRootCmd builds the notes command tree.
func NewRootCmd(setup SetupFunc) *cobra.Command {
	h := &handler{setup: setup}

	root := &cobra.Command{
		Use:           "notes",
		Short:         "Command-line client for the notes service",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			uc, cleanup, err := h.setup(cmd.Context(), h.opts)
			if err != nil {
				return err
			}
			h.uc, h.cleanup = uc, cleanup
			return nil
		},
	}

	root.PersistentFlags().StringVar(&h.opts.ConfigPath, "config", "", "Path to the config file")
	root.PersistentFlags().StringVar(&h.opts.APIURL, "api-url", "", "Backend API base URL (overrides config)")
	root.PersistentFlags().BoolVar(&h.opts.Lenient, "lenient", false, "Use the lenient failure policy")
	root.PersistentFlags().BoolVarP(&h.opts.Verbose, "verbose", "v", false, "Enable verbose logging")

	root.AddCommand(
		h.loginCmd(),
		h.registerCmd(),
		h.listCmd(),
		h.createCmd(),
		h.deleteCmd(),
		h.logoutCmd(),
		h.whoamiCmd(),
	)
	return root
}

func (h *handler) loginCmd() *cobra.Command {
	var input note.LoginInput
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in and list your notes",
		Args:  cobra.NoArgs,
		RunE: h.run(func(cmd *cobra.Command, args []string) error {
			return alerted(h.uc.Login(cmd.Context(), h.presenter(cmd), input))
		}),
	}
	cmd.Flags().StringVarP(&input.Username, "username", "u", "", "Username")
	cmd.Flags().StringVarP(&input.Password, "password", "p", "", "Password")
	return cmd
}

func (h *handler) registerCmd() *cobra.Command {
	var input note.RegisterInput
	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create an account",
		Args:  cobra.NoArgs,
		RunE: h.run(func(cmd *cobra.Command, args []string) error {
			return alerted(h.uc.Register(cmd.Context(), h.presenter(cmd), input))
		}),
	}
	cmd.Flags().StringVarP(&input.Username, "username", "u", "", "Username")
	cmd.Flags().StringVarP(&input.Email, "email", "e", "", "Email")
	cmd.Flags().StringVarP(&input.Password, "password", "p", "", "Password")
	return cmd
}

func (h *handler) listCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List your notes",
		Args:    cobra.NoArgs,
		RunE: h.run(func(cmd *cobra.Command, args []string) error {
			return alerted(h.uc.LoadNotes(cmd.Context(), h.presenter(cmd)))
		}),
	}
}

func (h *handler) createCmd() *cobra.Command {
	var input note.CreateNoteInput
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a note and list your notes",
		Args:  cobra.NoArgs,
		RunE: h.run(func(cmd *cobra.Command, args []string) error {
			return alerted(h.uc.CreateNote(cmd.Context(), h.presenter(cmd), input))
		}),
	}
	cmd.Flags().StringVarP(&input.Title, "title", "t", "", "Note title")
	cmd.Flags().StringVarP(&input.Content, "content", "c", "", "Note content")
	return cmd
}

func (h *handler) deleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "delete [id]",
		Aliases: []string{"rm"},
		Short:   "Delete a note and list your notes",
		Args:    cobra.ExactArgs(1),
		RunE: h.run(func(cmd *cobra.Command, args []string) error {
			return alerted(h.uc.DeleteNote(cmd.Context(), h.presenter(cmd), model.ID(args[0])))
		}),
	}
}

func (h *handler) logoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Forget the saved session",
		Args:  cobra.NoArgs,
		RunE: h.run(func(cmd *cobra.Command, args []string) error {
			return alerted(h.uc.Logout(cmd.Context(), h.presenter(cmd)))
		}),
	}
}

func (h *handler) whoamiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the signed-in user",
		Args:  cobra.NoArgs,
		RunE: h.run(func(cmd *cobra.Command, args []string) error {
			u, err := h.uc.WhoAmI(cmd.Context())
			if err != nil {
				return fmt.Errorf("whoami: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s <%s> (id %s)\n", u.Username, u.Email, u.ID)
			return nil
		}),
	}
}
