package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/djangocampus/campus/models"
	"github.com/djangocampus/campus/pkg/logger"
	"github.com/djangocampus/campus/services"
)

func (a *app) newWorkshopsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "workshops",
		Short: "Workshop commands",
	}

	var upcoming bool
	list := &cobra.Command{
		Use:   "list",
		Short: "List workshops",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc := services.NewWorkshopService(a.api, a.lggr)

			var (
				workshops []models.Workshop
				err       error
			)
			if upcoming {
				workshops, err = svc.ListUpcoming(cmd.Context())
			} else {
				workshops, err = svc.List(cmd.Context())
			}
			if err != nil {
				return err
			}
			return a.print(workshops)
		},
	}
	list.Flags().BoolVar(&upcoming, "upcoming", false, "Only workshops that have not ended")

	get := &cobra.Command{
		Use:   "get <id>",
		Short: "Show a single workshop",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid workshop id %q", args[0])
			}

			workshop, err := services.NewWorkshopService(a.api, a.lggr).Get(cmd.Context(), id)
			if err != nil {
				return err
			}
			return a.print(workshop)
		},
	}

	cmd.AddCommand(list, get)
	return cmd
}

func (a *app) newTeamCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "team",
		Short: "Team commands",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List team members (empty if the backend is unreachable)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.print(services.NewTeamService(a.api, a.lggr).List(cmd.Context()))
		},
	})

	return cmd
}

// newCollectionCmd, partners / contributors / supporters için ortak "list" komutu.
func newCollectionCmd[T models.Activatable](
	a *app,
	use, short string,
	newService func(services.Backend, logger.Logger) services.CollectionService[T],
) *cobra.Command {
	cmd := &cobra.Command{
		Use:   use,
		Short: short,
	}

	var active bool
	list := &cobra.Command{
		Use:   "list",
		Short: "List " + use,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			page, err := newService(a.api, a.lggr).List(cmd.Context())
			if err != nil {
				return err
			}

			items := page.Items()
			if active {
				items = models.FilterActive(items)
			}
			return a.print(items)
		},
	}
	list.Flags().BoolVar(&active, "active", false, "Only active entries")

	cmd.AddCommand(list)
	return cmd
}

func (a *app) newNewsletterCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "newsletter",
		Short: "Newsletter subscription commands",
	}

	var email, name string
	subscribe := &cobra.Command{
		Use:   "subscribe",
		Short: "Subscribe an email address",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			created, err := services.NewNewsletterService(a.api, a.lggr).Subscribe(cmd.Context(),
				&models.NewsletterSubscription{Email: email, Name: name})
			if err != nil {
				return err
			}
			return a.print(created)
		},
	}
	subscribe.Flags().StringVar(&email, "email", "", "Email address (required)")
	subscribe.Flags().StringVar(&name, "name", "", "Display name (defaults to \"Subscriber\")")
	_ = subscribe.MarkFlagRequired("email")

	var unsubEmail string
	unsubscribe := &cobra.Command{
		Use:   "unsubscribe",
		Short: "Remove an email address from the newsletter",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := services.NewNewsletterService(a.api, a.lggr).Unsubscribe(cmd.Context(), unsubEmail)
			if err != nil {
				return err
			}
			return a.print(result)
		},
	}
	unsubscribe.Flags().StringVar(&unsubEmail, "email", "", "Email address (required)")
	_ = unsubscribe.MarkFlagRequired("email")

	cmd.AddCommand(subscribe, unsubscribe)
	return cmd
}
