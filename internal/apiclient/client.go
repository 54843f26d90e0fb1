package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"habitd/internal/server"
	"habitd/pkg/habit"
	"habitd/pkg/versioninfo"
)

type Client struct {
	BaseURL string
	HTTP    *http.Client
}

func New(base string) *Client {
	return &Client{
		BaseURL: base,
		HTTP:    http.DefaultClient,
	}
}

func (c *Client) CreateHabit(ctx context.Context, title string, weekDays []int) (*habit.Habit, error) {
	body, _ := json.Marshal(server.CreateHabitRequest{Title: title, WeekDays: weekDays})
	req, _ := http.NewRequestWithContext(ctx, "POST", c.BaseURL+"/habits/", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	res, err := c.HTTP.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusCreated {
		return nil, fmt.Errorf("create habit: %s", res.Status)
	}
	var created habit.Habit
	if err := json.NewDecoder(res.Body).Decode(&created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *Client) ListHabits(ctx context.Context) ([]habit.Habit, error) {
	req, _ := http.NewRequestWithContext(ctx, "GET", c.BaseURL+"/habits/", nil)
	res, err := c.HTTP.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("list habits: %s", res.Status)
	}
	var response server.HabitListResponse
	if err := json.NewDecoder(res.Body).Decode(&response); err != nil {
		return nil, err
	}
	return response.Habits, nil
}

func (c *Client) Day(ctx context.Context, date string) (*habit.DaySummary, error) {
	req, _ := http.NewRequestWithContext(ctx, "GET", c.BaseURL+"/day?date="+date, nil)
	res, err := c.HTTP.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("day %s: %s", date, res.Status)
	}
	var out habit.DaySummary
	if err := json.NewDecoder(res.Body).Decode(&out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ToggleHabit(ctx context.Context, id string) (bool, error) {
	req, _ := http.NewRequestWithContext(ctx, "PATCH", c.BaseURL+"/habits/"+id+"/toggle", nil)
	res, err := c.HTTP.Do(req)
	if err != nil {
		return false, err
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		return false, fmt.Errorf("toggle %s: %s", id, res.Status)
	}
	var out server.ToggleResponse
	if err := json.NewDecoder(res.Body).Decode(&out); err != nil {
		return false, err
	}
	return out.Completed, nil
}

func (c *Client) Summary(ctx context.Context) ([]habit.SummaryEntry, error) {
	req, _ := http.NewRequestWithContext(ctx, "GET", c.BaseURL+"/summary", nil)
	res, err := c.HTTP.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("summary: %s", res.Status)
	}
	var out []habit.SummaryEntry
	if err := json.NewDecoder(res.Body).Decode(&out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) Version(ctx context.Context) (*versioninfo.VersionInfo, error) {
	req, _ := http.NewRequestWithContext(ctx, "GET", c.BaseURL+"/version", nil)
	res, err := c.HTTP.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("version: %s", res.Status)
	}
	var out versioninfo.VersionInfo
	if err := json.NewDecoder(res.Body).Decode(&out); err != nil {
		return nil, err
	}
	return &out, nil
}
