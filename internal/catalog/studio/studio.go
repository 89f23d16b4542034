// Copyright (c) 2026 GVDB. All rights reserved.

// Package studio manages production studios and their roster lookups.
//
// Creating a studio also seeds its three placeholder stage names, one per
// shared pool actor, so anonymous and background performers can be credited
// at the new studio immediately.
package studio

// Studio is one production studio.
type Studio struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// RosterEntry is one stage name billed at a studio.
type RosterEntry struct {
	StageNameID int    `json:"stage_name_id"`
	StageName   string `json:"stage_name"`
	ActorID     int    `json:"actor_id"`
	ActorTag    string `json:"actor_tag"`
}

// CreateInput is the payload accepted by the studio creation endpoint.
type CreateInput struct {
	Name string `json:"name"`
}

// poolStageNames maps each shared pool actor tag to the placeholder stage
// name it gets at a newly created studio.
func poolStageNames(studioName string) map[string]string {
	return map[string]string{
		"ANONYMOUS_POOL": "墨鏡男（" + studioName + "）",
		"UNKNOWN_POOL":   "路人甲（" + studioName + "）",
		"GIRL_POOL":      "女（" + studioName + "）",
	}
}
