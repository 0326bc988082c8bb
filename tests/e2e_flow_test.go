package tests

import (
	"fmt"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flowfit/flowfit/internal/config"
	"github.com/flowfit/flowfit/internal/server"
)

func TestGoldenPath(t *testing.T) {
	// 1. Setup Infrastructure
	db, cleanupDB := SetupTestDB(t)
	defer cleanupDB()

	mr, err := miniredis.Run()
	require.NoError(t, err)
	defer mr.Close()

	redisClient := redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})

	cfg := &config.Config{}
	cfg.Server.MaxUploadSizeMB = 10
	cfg.JWT.Secret = "test-secret-key-123"
	cfg.JWT.AccessTokenExpiry = 15 * time.Minute
	cfg.JWT.RefreshTokenExpiry = 7 * 24 * time.Hour

	app := server.NewApp(server.AppDependencies{
		Config:      cfg,
		MongoDB:     db,
		RedisClient: redisClient,
	})

	// ==========================================
	// STEP 1: Register creator account
	// ==========================================
	aliceToken := registerUser(t, app, "alice@flowfit.test", "Alice")
	fmt.Println("✓ Creator registered")

	// ==========================================
	// STEP 2: Build the exercise catalog
	// ==========================================
	exerciseIDs := make([]string, 0, 3)
	for _, name := range []string{"Pompes", "Squats", "Gainage planche"} {
		resp := request(t, app, "POST", "/v1/exercises", aliceToken, map[string]string{
			"name":        name,
			"category":    "Musculation",
			"subcategory": "Circuit",
		})
		require.Equal(t, 201, resp.StatusCode)
		data := decode(t, resp)
		exerciseIDs = append(exerciseIDs, data["id"].(string))
	}
	fmt.Println("✓ Catalog seeded")

	// Duplicate names are rejected
	resp := request(t, app, "POST", "/v1/exercises", aliceToken, map[string]string{
		"name":     "Pompes",
		"category": "Musculation",
	})
	assert.Equal(t, 409, resp.StatusCode)

	// ==========================================
	// STEP 3: Compose a session
	// ==========================================
	draft := map[string]interface{}{
		"name":       "Circuit du matin",
		"category":   "Musculation",
		"difficulty": "Moyen",
		"rest_time":  10,
		"exercises": []map[string]interface{}{
			{"exercise_id": exerciseIDs[0], "duration": 30},
			{"exercise_id": exerciseIDs[1], "duration": 45},
			{"exercise_id": exerciseIDs[2], "duration": 20},
		},
	}
	resp = request(t, app, "POST", "/v1/sessions", aliceToken, draft)
	require.Equal(t, 201, resp.StatusCode)

	sessionData := decode(t, resp)
	sessionID := sessionData["id"].(string)
	require.NotEmpty(t, sessionID)

	// 30 + 45 + 20 + 2 rests of 10
	assert.EqualValues(t, 115, sessionData["duration"])

	entries := sessionData["exercises"].([]interface{})
	require.Len(t, entries, 3)
	for i, raw := range entries {
		entry := raw.(map[string]interface{})
		assert.EqualValues(t, i+1, entry["order"])
	}
	fmt.Println("✓ Session composed:", sessionID)

	// Validation: disallowed rest time
	bad := map[string]interface{}{
		"name":       "Vide",
		"category":   "Musculation",
		"difficulty": "Facile",
		"rest_time":  7,
		"exercises": []map[string]interface{}{
			{"exercise_id": exerciseIDs[0]},
		},
	}
	resp = request(t, app, "POST", "/v1/sessions", aliceToken, bad)
	assert.Equal(t, 400, resp.StatusCode)

	// Validation: duplicate exercise in one session
	bad["rest_time"] = 10
	bad["exercises"] = []map[string]interface{}{
		{"exercise_id": exerciseIDs[0]},
		{"exercise_id": exerciseIDs[0]},
	}
	resp = request(t, app, "POST", "/v1/sessions", aliceToken, bad)
	assert.Equal(t, 409, resp.StatusCode)

	// Validation: unknown category is a form error, never a 500
	bad["exercises"] = []map[string]interface{}{
		{"exercise_id": exerciseIDs[0]},
	}
	bad["category"] = "Cardio"
	resp = request(t, app, "POST", "/v1/sessions", aliceToken, bad)
	assert.Equal(t, 400, resp.StatusCode)

	// ==========================================
	// STEP 4: Playback preview and timeline
	// ==========================================
	resp = request(t, app, "POST", "/v1/sessions/"+sessionID+"/playback/preview", aliceToken, map[string]interface{}{
		"rest_time":          5,
		"duration_overrides": map[string]int{exerciseIDs[1]: 60},
	})
	require.Equal(t, 200, resp.StatusCode)
	preview := decode(t, resp)
	// 30 + 60 + 20 + 2 rests of 5
	assert.EqualValues(t, 120, preview["total_duration"])

	resp = request(t, app, "POST", "/v1/sessions/"+sessionID+"/playback/timeline", aliceToken, nil)
	require.Equal(t, 200, resp.StatusCode)
	timeline := decode(t, resp)
	// 5 countdown + stored 115
	assert.EqualValues(t, 120, timeline["total_seconds"])
	segments := timeline["segments"].([]interface{})
	require.Len(t, segments, 6) // countdown + 3 exercises + 2 rests
	fmt.Println("✓ Playback schedule verified")

	// Rest override outside the allowed set
	resp = request(t, app, "POST", "/v1/sessions/"+sessionID+"/playback/preview", aliceToken, map[string]interface{}{
		"rest_time": 7,
	})
	assert.Equal(t, 400, resp.StatusCode)

	// ==========================================
	// STEP 5: Share with the community
	// ==========================================
	resp = request(t, app, "PUT", "/v1/sessions/"+sessionID+"/share", aliceToken, map[string]bool{
		"shared": true,
	})
	require.Equal(t, 200, resp.StatusCode)
	fmt.Println("✓ Session shared")

	// ==========================================
	// STEP 6: Second user browses, rates, favorites
	// ==========================================
	bobToken := registerUser(t, app, "bob@flowfit.test", "Bob")

	resp = request(t, app, "GET", "/v1/community/sessions", bobToken, nil)
	require.Equal(t, 200, resp.StatusCode)
	community := decode(t, resp)
	assert.EqualValues(t, 1, community["count"])

	// Bob cannot edit Alice's session
	resp = request(t, app, "PUT", "/v1/sessions/"+sessionID, bobToken, draft)
	assert.Equal(t, 403, resp.StatusCode)

	// Rate, then change the rating: count must stay 1
	resp = request(t, app, "PUT", "/v1/community/sessions/"+sessionID+"/rating", bobToken, map[string]int{"rating": 4})
	require.Equal(t, 200, resp.StatusCode)
	ratingData := decode(t, resp)
	assert.EqualValues(t, 4, ratingData["rating"])
	assert.EqualValues(t, 1, ratingData["rating_count"])

	resp = request(t, app, "PUT", "/v1/community/sessions/"+sessionID+"/rating", bobToken, map[string]int{"rating": 2})
	require.Equal(t, 200, resp.StatusCode)
	ratingData = decode(t, resp)
	assert.EqualValues(t, 2, ratingData["rating"])
	assert.EqualValues(t, 1, ratingData["rating_count"])

	// Out-of-range rating
	resp = request(t, app, "PUT", "/v1/community/sessions/"+sessionID+"/rating", bobToken, map[string]int{"rating": 6})
	assert.Equal(t, 400, resp.StatusCode)
	fmt.Println("✓ Ratings verified")

	// Favorite, twice (second is a no-op), then list
	resp = request(t, app, "PUT", "/v1/community/sessions/"+sessionID+"/favorite", bobToken, nil)
	require.Equal(t, 200, resp.StatusCode)
	resp = request(t, app, "PUT", "/v1/community/sessions/"+sessionID+"/favorite", bobToken, nil)
	require.Equal(t, 200, resp.StatusCode)

	resp = request(t, app, "GET", "/v1/favorites", bobToken, nil)
	require.Equal(t, 200, resp.StatusCode)
	favorites := decode(t, resp)
	assert.EqualValues(t, 1, favorites["count"])
	fmt.Println("✓ Favorites verified")

	// Session detail reflects Bob's relationship to it
	resp = request(t, app, "GET", "/v1/sessions/"+sessionID, bobToken, nil)
	require.Equal(t, 200, resp.StatusCode)
	detail := decode(t, resp)
	assert.Equal(t, true, detail["is_favorite"])
	assert.EqualValues(t, 2, detail["my_rating"])
	assert.EqualValues(t, 1, detail["favorite_count"])

	// ==========================================
	// STEP 7: Delete cascades ratings and favorites
	// ==========================================
	resp = request(t, app, "DELETE", "/v1/sessions/"+sessionID, bobToken, nil)
	assert.Equal(t, 403, resp.StatusCode) // not the owner

	resp = request(t, app, "DELETE", "/v1/sessions/"+sessionID, aliceToken, nil)
	require.Equal(t, 204, resp.StatusCode)

	resp = request(t, app, "GET", "/v1/favorites", bobToken, nil)
	require.Equal(t, 200, resp.StatusCode)
	favorites = decode(t, resp)
	assert.EqualValues(t, 0, favorites["count"])
	fmt.Println("✓ Cascade delete verified")
}

func TestAuthFlow(t *testing.T) {
	db, cleanupDB := SetupTestDB(t)
	defer cleanupDB()

	mr, err := miniredis.Run()
	require.NoError(t, err)
	defer mr.Close()

	cfg := &config.Config{}
	cfg.Server.MaxUploadSizeMB = 10
	cfg.JWT.Secret = "test-secret-key-123"
	cfg.JWT.AccessTokenExpiry = 15 * time.Minute
	cfg.JWT.RefreshTokenExpiry = 7 * 24 * time.Hour

	app := server.NewApp(server.AppDependencies{
		Config:      cfg,
		MongoDB:     db,
		RedisClient: redis.NewClient(&redis.Options{Addr: mr.Addr()}),
	})

	// Register
	token := registerUser(t, app, "carole@flowfit.test", "Carole")
	require.NotEmpty(t, token)

	// Duplicate email
	resp := request(t, app, "POST", "/v1/auth/register", "", map[string]string{
		"email":    "carole@flowfit.test",
		"password": "correct-horse-battery",
	})
	assert.Equal(t, 409, resp.StatusCode)

	// Weak password
	resp = request(t, app, "POST", "/v1/auth/register", "", map[string]string{
		"email":    "dan@flowfit.test",
		"password": "short",
	})
	assert.Equal(t, 400, resp.StatusCode)

	// Login with wrong password
	resp = request(t, app, "POST", "/v1/auth/login", "", map[string]string{
		"email":    "carole@flowfit.test",
		"password": "not-the-password",
	})
	assert.Equal(t, 401, resp.StatusCode)

	// Login with the right one
	resp = request(t, app, "POST", "/v1/auth/login", "", map[string]string{
		"email":    "carole@flowfit.test",
		"password": "correct-horse-battery",
	})
	require.Equal(t, 200, resp.StatusCode)
	data := decode(t, resp)
	require.NotEmpty(t, data["token"])

	// Protected routes reject missing tokens
	resp = request(t, app, "GET", "/v1/sessions", "", nil)
	assert.Equal(t, 401, resp.StatusCode)
}
