// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package store reads and writes projects.

	projects := store.NewProjectStore(conn)

	project, found, err := projects.GetProjectByID(ctx, id)
	if err != nil {
		// database failure
	}
	if !found {
		// no project with that id
	}

A missing project is reported through found, never as an error, so callers
branch on the result instead of inspecting error values.

CreateProject validates required fields and non-negative counters, assigns a
UUID when the ID is empty and writes tags and team members in one transaction.
*/
package store
