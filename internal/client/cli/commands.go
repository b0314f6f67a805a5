package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"text/tabwriter"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

var (
	errNotLoggedIn  = errors.New("log in first or pass a username")
	errNotAnObject  = errors.New("save expects a JSON object, e.g. save {\"score\":100}")
	errEmptyPayload = errors.New("usage: save <json>")
)

func (a *App) promptCredentials() (string, string, error) {
	userName, err := getSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		return "", "", err
	}
	password, err := getPassword(a.out)
	if err != nil {
		return "", "", err
	}
	return userName, password, nil
}

func (a *App) Register(ctx context.Context) error {
	userName, password, err := a.promptCredentials()
	if err != nil {
		return err
	}
	if err := a.api.Register(ctx, userName, password); err != nil {
		return err
	}
	a.printf("Registered %s\n", userName)
	return nil
}

// Login checks the credentials with the server and remembers the username
// for later saves. The server issues no session.
func (a *App) Login(ctx context.Context) error {
	userName, password, err := a.promptCredentials()
	if err != nil {
		return err
	}
	if err := a.api.Login(ctx, userName, password); err != nil {
		return err
	}
	a.userName = userName
	a.printf("Logged in as %s\n", userName)
	return nil
}

func (a *App) Logout() {
	a.userName = ""
	a.printf("Logged out\n")
}

// Save sends a JSON object as the save game. The logged-in username is added
// when the object has none.
func (a *App) Save(ctx context.Context, raw string) error {
	if raw == "" {
		return errEmptyPayload
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal([]byte(raw), &fields); err != nil || fields == nil {
		return errNotAnObject
	}

	if _, ok := fields["username"]; !ok {
		if !a.isLoggedIn() {
			return errNotLoggedIn
		}
		name, _ := json.Marshal(a.userName)
		fields["username"] = name
	}

	payload, err := json.Marshal(fields)
	if err != nil {
		return err
	}
	if err := a.api.Save(ctx, payload); err != nil {
		return err
	}
	a.printf("Saved\n")
	return nil
}

func (a *App) Load(ctx context.Context, userName string) error {
	if userName == "" {
		userName = a.userName
	}
	if userName == "" {
		return errNotLoggedIn
	}

	save, err := a.api.Load(ctx, userName)
	if err != nil {
		return err
	}
	if save == nil {
		a.printf("No save for %s\n", userName)
		return nil
	}

	var pretty bytes.Buffer
	if err := json.Indent(&pretty, save, "", "  "); err != nil {
		return err
	}
	a.printf("%s\n", pretty.String())
	return nil
}

func (a *App) Top(ctx context.Context) error {
	top, err := a.api.Leaderboard(ctx)
	if err != nil {
		return err
	}
	if len(top) == 0 {
		a.printf("Leaderboard is empty\n")
		return nil
	}

	tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	a.fprintTable(tw, top)
	return tw.Flush()
}

func (a *App) Ping(ctx context.Context) error {
	if err := a.api.Ping(ctx); err != nil {
		return err
	}
	a.printf("Server is up\n")
	return nil
}
