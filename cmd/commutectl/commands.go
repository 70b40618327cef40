package main

import (
	"fmt"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/fleetdemo/commute-benefits/internal/core/domain"
	"github.com/fleetdemo/commute-benefits/internal/core/ports"
)

func (a *app) loginCmd() *cobra.Command {
	var username, password, mode string
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in to the commute API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			if sid, _, err := a.current(ctx); err == nil {
				_ = a.forget(ctx, sid)
			}
			res, err := a.sessions.Login(ctx, username, password, mode)
			if err != nil {
				return err
			}
			if err := a.stores.Profile(cliOwner).Set(ctx, keySessionID, res.Session.ID); err != nil {
				return err
			}
			fmt.Fprintf(a.out, "logged in as %s (%s) until %s\n",
				res.Session.Username, res.Session.Mode, res.Session.ExpiresAt.Local().Format("2006-01-02 15:04"))
			return nil
		},
	}
	cmd.Flags().StringVarP(&username, "username", "u", "", "username")
	cmd.Flags().StringVarP(&password, "password", "p", "", "password")
	cmd.Flags().StringVar(&mode, "mode", domain.RoleAdmin, "login mode: admin or commuter")
	_ = cmd.MarkFlagRequired("username")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}

func (a *app) logoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "End the current session; the rewards pool is kept",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			sid, _, err := a.current(cmd.Context())
			if err != nil {
				return err
			}
			if err := a.forget(cmd.Context(), sid); err != nil {
				return err
			}
			fmt.Fprintln(a.out, "logged out")
			return nil
		},
	}
}

func (a *app) employeesCmd() *cobra.Command {
	var q ports.RosterQuery
	cmd := &cobra.Command{
		Use:     "employees",
		Aliases: []string{"ls"},
		Short:   "List employees with their enrollment state",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			console, err := a.console(cmd.Context())
			if err != nil {
				return err
			}
			res, err := console.Roster(cmd.Context(), q)
			if err != nil {
				return err
			}

			tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tNAME\tEMAIL\tDEPARTMENT\tSTATE\tPOOL")
			for _, r := range res.Rows {
				pool := ""
				if r.PoolMember {
					pool = "yes"
				}
				fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\n",
					r.Employee.ID, r.Employee.Name, r.Employee.Email, r.Employee.Department, r.State, pool)
			}
			if err := tw.Flush(); err != nil {
				return err
			}
			fmt.Fprintf(a.out, "%d employees, %d enrolled, %d in rewards pool\n", res.Total, res.Enrolled, res.PoolMembers)
			return nil
		},
	}
	cmd.Flags().StringVarP(&q.Department, "department", "d", "", "only this department")
	cmd.Flags().StringVarP(&q.Search, "search", "s", "", "match name or email")
	return cmd
}

func (a *app) enrollCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "enroll EMPLOYEE_ID",
		Short: "Enroll an employee",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseEmployeeID(args[0])
			if err != nil {
				return err
			}
			console, err := a.console(cmd.Context())
			if err != nil {
				return err
			}
			res, err := console.Enroll(cmd.Context(), id)
			if err != nil {
				return err
			}
			fmt.Fprintf(a.out, "employee %d enrolled (enrollment %d)\n", res.EmployeeID, res.EnrollmentID)
			return nil
		},
	}
}

func (a *app) cancelCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "cancel EMPLOYEE_ID",
		Short: "Cancel an employee's active enrollment",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseEmployeeID(args[0])
			if err != nil {
				return err
			}
			console, err := a.console(cmd.Context())
			if err != nil {
				return err
			}
			// Cancel needs the active enrollment id, which only a roster
			// fetch provides.
			if _, err := console.Roster(cmd.Context(), ports.RosterQuery{}); err != nil {
				return err
			}
			res, err := console.Cancel(cmd.Context(), id)
			if err != nil {
				return err
			}
			if res.Skipped {
				fmt.Fprintf(a.out, "employee %d has no active enrollment\n", res.EmployeeID)
				return nil
			}
			fmt.Fprintf(a.out, "employee %d canceled\n", res.EmployeeID)
			return nil
		},
	}
}

func (a *app) poolCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pool",
		Short: "Manage the rewards pool",
	}

	printMembers := func(members []domain.EmployeeID) {
		ids := make([]string, 0, len(members))
		for _, m := range members {
			ids = append(ids, strconv.FormatInt(int64(m), 10))
		}
		fmt.Fprintf(a.out, "%d members: %s\n", len(members), strings.Join(ids, ", "))
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List pool members",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			console, err := a.console(cmd.Context())
			if err != nil {
				return err
			}
			printMembers(console.Pool(cmd.Context()))
			return nil
		},
	}
	join := &cobra.Command{
		Use:   "join EMPLOYEE_ID",
		Short: "Add an employee to the pool",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseEmployeeID(args[0])
			if err != nil {
				return err
			}
			console, err := a.console(cmd.Context())
			if err != nil {
				return err
			}
			printMembers(console.JoinPool(cmd.Context(), id))
			return nil
		},
	}
	leave := &cobra.Command{
		Use:   "leave EMPLOYEE_ID",
		Short: "Remove an employee from the pool",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseEmployeeID(args[0])
			if err != nil {
				return err
			}
			console, err := a.console(cmd.Context())
			if err != nil {
				return err
			}
			members, err := console.LeavePool(cmd.Context(), id)
			if err != nil {
				return err
			}
			printMembers(members)
			return nil
		},
	}

	cmd.AddCommand(list, join, leave)
	return cmd
}

func (a *app) reportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "report",
		Short: "Show the participation report",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			sid, _, err := a.current(cmd.Context())
			if err != nil {
				return err
			}
			r, err := a.reports.Participation(cmd.Context(), sid)
			if err != nil {
				return err
			}
			fmt.Fprintf(a.out, "active enrollments: %d\nparticipation: %.2f%%\n", r.ActiveEnrollments, r.ParticipationRate)
			return nil
		},
	}
}
