package services

import (
	"Backend-WMS-ROI/src/database"
	"Backend-WMS-ROI/src/models"
	"Backend-WMS-ROI/src/utils"
	"context"
	"errors"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"golang.org/x/crypto/bcrypt"
)

const (
	maxLoginAttempts = 5
	loginCooldown    = 15 * time.Minute
)

// AuthenticateUser checks email/password against the users collection.
func AuthenticateUser(email, password string) (*models.User, error) {
	ctx := context.Background()

	var dbUser models.User
	err := database.UserCollection.FindOne(ctx, bson.M{"email": strings.ToLower(email)}).Decode(&dbUser)
	if err != nil {
		return nil, errors.New("invalid email or password")
	}

	if !dbUser.IsActive {
		return nil, errors.New("account is deactivated")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(dbUser.Password), []byte(password)); err != nil {
		return nil, errors.New("invalid email or password")
	}

	now := time.Now()
	_, _ = database.UserCollection.UpdateOne(ctx,
		bson.M{"_id": dbUser.ID},
		bson.M{"$set": bson.M{"lastLogin": now}},
	)
	dbUser.LastLogin = &now
	dbUser.Password = ""

	return &dbUser, nil
}

// IsRateLimited reports whether the email hit the failed-login cap.
func IsRateLimited(email string) bool {
	count, err := utils.LoginFailureCount(strings.ToLower(email))
	if err != nil {
		return false
	}
	return count >= maxLoginAttempts
}

// GetRemainingCooldownTime returns how long until login attempts reset.
func GetRemainingCooldownTime(email string) time.Duration {
	return utils.LoginCooldownRemaining(strings.ToLower(email))
}

// LogLoginAttempt records the attempt in the audit trail and keeps the
// failure counter up to date.
func LogLoginAttempt(email, ip string, success bool) {
	email = strings.ToLower(email)
	if success {
		utils.ClearLoginFailures(email)
		WriteAudit("user", "", models.AuditLogin, email, ip, bson.M{"success": true})
		return
	}
	_, _ = utils.RecordLoginFailure(email, loginCooldown)
	WriteAudit("user", "", models.AuditLogin, email, ip, bson.M{"success": false})
}

// LogLogout records a logout in the audit trail.
func LogLogout(userID, ip string) {
	WriteAudit("user", userID, models.AuditLogout, userID, ip, nil)
}

// blacklistTTL is how long a revoked token must stay on the blacklist:
// until it expires on its own. Unparseable tokens get the full token
// lifetime to be safe.
func blacklistTTL(token string) time.Duration {
	if claims, err := utils.ParseJWT(token); err == nil && claims.ExpiresAt != nil {
		if remaining := time.Until(claims.ExpiresAt.Time); remaining > 0 {
			return remaining
		}
	}
	return 24 * time.Hour
}

// AddToBlacklist revokes an access token until its natural expiry.
func AddToBlacklist(token string) {
	_ = utils.BlacklistToken(token, blacklistTTL(token))
}
