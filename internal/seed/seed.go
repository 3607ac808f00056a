package seed

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	appModels "github.com/yigit/courseapi/internal/app/models"
	appRepos "github.com/yigit/courseapi/internal/app/repositories"
	"github.com/yigit/courseapi/internal/pkg/apperrors"
	"github.com/yigit/courseapi/internal/pkg/auth"
)

// DemoPassword is the plain password of every seeded user
const DemoPassword = "password"

type demoCourse struct {
	title           string
	description     string
	estimatedTime   string
	materialsNeeded string
}

type demoUser struct {
	firstName    string
	lastName     string
	emailAddress string
	courses      []demoCourse
}

var demoData = []demoUser{
	{
		firstName:    "Joe",
		lastName:     "Smith",
		emailAddress: "joe@smith.com",
		courses: []demoCourse{
			{
				title:           "Build a Basic Bookcase",
				description:     "High-end furniture projects are great to dream about. But unless you have a well-equipped shop and some serious woodworking experience to draw on, it can be difficult to turn the dream into a reality.",
				estimatedTime:   "12 hours",
				materialsNeeded: "* 1/2 x 3/4 inch parting strip\n* 1 x 2 common pine\n* 1 x 4 common pine\n* Wood screws\n* Wood glue",
			},
		},
	},
	{
		firstName:    "Sally",
		lastName:     "Jones",
		emailAddress: "sally@jones.com",
		courses: []demoCourse{
			{
				title:       "Learn How to Program",
				description: "In this course, you'll learn how to write code like a pro!",
			},
		},
	},
}

// CreateDefaultData creates demo users and their courses when no user exists yet.
func CreateDefaultData(
	ctx context.Context,
	userRepo appRepos.UserStore,
	courseRepo appRepos.CourseStore,
	bcryptCost int,
	lgr zerolog.Logger,
) error {
	count, err := userRepo.CountUsers(ctx)
	if err != nil {
		return fmt.Errorf("error counting users: %w", err)
	}
	if count > 0 {
		lgr.Info().Int64("users", count).Msg("Users already present, skipping demo data")
		return nil
	}

	lgr.Info().Msg("Creating demo users and courses...")
	hash, err := auth.HashPassword(DemoPassword, bcryptCost)
	if err != nil {
		return fmt.Errorf("error hashing demo password: %w", err)
	}

	var finalErr error // collect errors without stopping the process
	for _, du := range demoData {
		user := &appModels.User{
			FirstName:    du.firstName,
			LastName:     du.lastName,
			EmailAddress: du.emailAddress,
			Password:     hash,
		}
		if _, err := userRepo.CreateUser(ctx, user); err != nil {
			if !errors.Is(err, apperrors.ErrEmailAlreadyExists) {
				lgr.Error().Err(err).Str("emailAddress", du.emailAddress).Msg("Error creating demo user")
				finalErr = errors.Join(finalErr, err)
			}
			continue
		}

		for _, dc := range du.courses {
			course := &appModels.Course{
				UserID:      user.ID,
				Title:       dc.title,
				Description: dc.description,
			}
			if dc.estimatedTime != "" {
				course.EstimatedTime = &dc.estimatedTime
			}
			if dc.materialsNeeded != "" {
				course.MaterialsNeeded = &dc.materialsNeeded
			}
			if _, err := courseRepo.CreateCourse(ctx, course); err != nil {
				lgr.Error().Err(err).Str("title", dc.title).Msg("Error creating demo course")
				finalErr = errors.Join(finalErr, err)
			}
		}
	}

	if finalErr == nil {
		lgr.Info().Int("users", len(demoData)).Msg("Demo data created")
	}
	return finalErr
}
