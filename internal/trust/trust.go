// Package trust contains the policies deriving user's trust score, level and claims quota.
//
// Two independent policies coexist. The claim policy is driven by the ratio of completed
// to expired claims and is applied to claimers whenever one of their claims changes status.
// The rating policy is a running average of received stars and is applied to posters when
// they get rated. Both write the same trust score, so the last applied policy wins.
package trust

import (
	"github.com/reswipe/reswipe/internal/entities"
)

const maxStars = 5

// DefaultStanding is a standing of a user without any history.
func DefaultStanding() entities.Standing {
	return entities.Standing{
		TrustScore:       1,
		Level:            entities.RookieRescuer,
		MaxClaimsAllowed: MaxClaims(entities.RookieRescuer),
	}
}

// FromClaimHistory returns standing computed by the claim policy.
func FromClaimHistory(completed, expired uint32) entities.Standing {
	score := ClaimTrustScore(completed, expired)
	level := ClaimLevel(score, completed)

	return entities.Standing{
		TrustScore:       score,
		Level:            level,
		MaxClaimsAllowed: MaxClaims(level),
	}
}

// FromRating returns standing computed by the rating policy after a new rating.
// ratings is the number of ratings received before this one.
func FromRating(oldScore float64, ratings uint32, stars uint8) entities.Standing {
	score := RatingTrustScore(oldScore, ratings, stars)
	level := RatingLevel(ratings+1, score*maxStars)

	return entities.Standing{
		TrustScore:       score,
		Level:            level,
		MaxClaimsAllowed: MaxClaims(level),
	}
}

// ClaimTrustScore returns share of completed claims among finished ones.
// New users start fully trusted.
func ClaimTrustScore(completed, expired uint32) float64 {
	total := completed + expired
	if total == 0 {
		return 1
	}

	return float64(completed) / float64(total)
}

// RatingTrustScore adds stars to the running average stored as a [0,1] score.
func RatingTrustScore(oldScore float64, oldRatingCount uint32, stars uint8) float64 {
	return (oldScore*float64(oldRatingCount) + float64(stars)/maxStars) / float64(oldRatingCount+1)
}

// ClaimLevel ...
func ClaimLevel(trustScore float64, completed uint32) entities.Level {
	switch {
	case completed >= 20 && trustScore >= 0.9:
		return entities.FoodLegend
	case completed >= 5 && trustScore >= 0.7:
		return entities.FoodHero
	default:
		return entities.RookieRescuer
	}
}

// RatingLevel ...
func RatingLevel(totalRatings uint32, averageStars float64) entities.Level {
	switch {
	case totalRatings >= 20 && averageStars >= 4.0:
		return entities.FoodLegend
	case totalRatings >= 5 && averageStars >= 3.5:
		return entities.FoodHero
	default:
		return entities.RookieRescuer
	}
}

// MaxClaims returns simultaneous claims quota of level.
func MaxClaims(l entities.Level) uint32 {
	switch l {
	case entities.FoodLegend:
		return 5
	case entities.FoodHero:
		return 3
	default:
		return 1
	}
}
