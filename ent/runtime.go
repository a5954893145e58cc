// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"ludamus.io/enrolld/ent/agendaitem"
	"ludamus.io/enrolld/ent/domainenrollmentconfig"
	"ludamus.io/enrolld/ent/enrollmentconfig"
	"ludamus.io/enrolld/ent/event"
	"ludamus.io/enrolld/ent/notification"
	"ludamus.io/enrolld/ent/schema"
	"ludamus.io/enrolld/ent/session"
	"ludamus.io/enrolld/ent/sessionparticipation"
	"ludamus.io/enrolld/ent/space"
	"ludamus.io/enrolld/ent/sphere"
	"ludamus.io/enrolld/ent/user"
	"ludamus.io/enrolld/ent/userenrollmentconfig"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	agendaitemMixin := schema.AgendaItem{}.Mixin()
	agendaitemMixinFields0 := agendaitemMixin[0].Fields()
	_ = agendaitemMixinFields0
	agendaitemFields := schema.AgendaItem{}.Fields()
	_ = agendaitemFields
	// agendaitemDescCreatedAt is the schema descriptor for created_at field.
	agendaitemDescCreatedAt := agendaitemMixinFields0[0].Descriptor()
	// agendaitem.DefaultCreatedAt holds the default value on creation for the created_at field.
	agendaitem.DefaultCreatedAt = agendaitemDescCreatedAt.Default.(func() time.Time)
	// agendaitemDescUpdatedAt is the schema descriptor for updated_at field.
	agendaitemDescUpdatedAt := agendaitemMixinFields0[1].Descriptor()
	// agendaitem.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	agendaitem.DefaultUpdatedAt = agendaitemDescUpdatedAt.Default.(func() time.Time)
	// agendaitem.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	agendaitem.UpdateDefaultUpdatedAt = agendaitemDescUpdatedAt.UpdateDefault.(func() time.Time)
	// agendaitemDescSessionConfirmed is the schema descriptor for session_confirmed field.
	agendaitemDescSessionConfirmed := agendaitemFields[5].Descriptor()
	// agendaitem.DefaultSessionConfirmed holds the default value on creation for the session_confirmed field.
	agendaitem.DefaultSessionConfirmed = agendaitemDescSessionConfirmed.Default.(bool)
	domainenrollmentconfigMixin := schema.DomainEnrollmentConfig{}.Mixin()
	domainenrollmentconfigMixinFields0 := domainenrollmentconfigMixin[0].Fields()
	_ = domainenrollmentconfigMixinFields0
	domainenrollmentconfigFields := schema.DomainEnrollmentConfig{}.Fields()
	_ = domainenrollmentconfigFields
	// domainenrollmentconfigDescCreatedAt is the schema descriptor for created_at field.
	domainenrollmentconfigDescCreatedAt := domainenrollmentconfigMixinFields0[0].Descriptor()
	// domainenrollmentconfig.DefaultCreatedAt holds the default value on creation for the created_at field.
	domainenrollmentconfig.DefaultCreatedAt = domainenrollmentconfigDescCreatedAt.Default.(func() time.Time)
	// domainenrollmentconfigDescUpdatedAt is the schema descriptor for updated_at field.
	domainenrollmentconfigDescUpdatedAt := domainenrollmentconfigMixinFields0[1].Descriptor()
	// domainenrollmentconfig.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	domainenrollmentconfig.DefaultUpdatedAt = domainenrollmentconfigDescUpdatedAt.Default.(func() time.Time)
	// domainenrollmentconfig.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	domainenrollmentconfig.UpdateDefaultUpdatedAt = domainenrollmentconfigDescUpdatedAt.UpdateDefault.(func() time.Time)
	// domainenrollmentconfigDescDomain is the schema descriptor for domain field.
	domainenrollmentconfigDescDomain := domainenrollmentconfigFields[2].Descriptor()
	// domainenrollmentconfig.DomainValidator is a validator for the "domain" field. It is called by the builders before save.
	domainenrollmentconfig.DomainValidator = func() func(string) error {
		validators := domainenrollmentconfigDescDomain.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(domain string) error {
			for _, fn := range fns {
				if err := fn(domain); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// domainenrollmentconfigDescAllowedSlotsPerUser is the schema descriptor for allowed_slots_per_user field.
	domainenrollmentconfigDescAllowedSlotsPerUser := domainenrollmentconfigFields[3].Descriptor()
	// domainenrollmentconfig.DefaultAllowedSlotsPerUser holds the default value on creation for the allowed_slots_per_user field.
	domainenrollmentconfig.DefaultAllowedSlotsPerUser = domainenrollmentconfigDescAllowedSlotsPerUser.Default.(int)
	// domainenrollmentconfig.AllowedSlotsPerUserValidator is a validator for the "allowed_slots_per_user" field. It is called by the builders before save.
	domainenrollmentconfig.AllowedSlotsPerUserValidator = domainenrollmentconfigDescAllowedSlotsPerUser.Validators[0].(func(int) error)
	enrollmentconfigMixin := schema.EnrollmentConfig{}.Mixin()
	enrollmentconfigMixinFields0 := enrollmentconfigMixin[0].Fields()
	_ = enrollmentconfigMixinFields0
	enrollmentconfigFields := schema.EnrollmentConfig{}.Fields()
	_ = enrollmentconfigFields
	// enrollmentconfigDescCreatedAt is the schema descriptor for created_at field.
	enrollmentconfigDescCreatedAt := enrollmentconfigMixinFields0[0].Descriptor()
	// enrollmentconfig.DefaultCreatedAt holds the default value on creation for the created_at field.
	enrollmentconfig.DefaultCreatedAt = enrollmentconfigDescCreatedAt.Default.(func() time.Time)
	// enrollmentconfigDescUpdatedAt is the schema descriptor for updated_at field.
	enrollmentconfigDescUpdatedAt := enrollmentconfigMixinFields0[1].Descriptor()
	// enrollmentconfig.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	enrollmentconfig.DefaultUpdatedAt = enrollmentconfigDescUpdatedAt.Default.(func() time.Time)
	// enrollmentconfig.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	enrollmentconfig.UpdateDefaultUpdatedAt = enrollmentconfigDescUpdatedAt.UpdateDefault.(func() time.Time)
	// enrollmentconfigDescName is the schema descriptor for name field.
	enrollmentconfigDescName := enrollmentconfigFields[2].Descriptor()
	// enrollmentconfig.NameValidator is a validator for the "name" field. It is called by the builders before save.
	enrollmentconfig.NameValidator = func() func(string) error {
		validators := enrollmentconfigDescName.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(name string) error {
			for _, fn := range fns {
				if err := fn(name); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// enrollmentconfigDescPercentageSlots is the schema descriptor for percentage_slots field.
	enrollmentconfigDescPercentageSlots := enrollmentconfigFields[5].Descriptor()
	// enrollmentconfig.DefaultPercentageSlots holds the default value on creation for the percentage_slots field.
	enrollmentconfig.DefaultPercentageSlots = enrollmentconfigDescPercentageSlots.Default.(int)
	// enrollmentconfig.PercentageSlotsValidator is a validator for the "percentage_slots" field. It is called by the builders before save.
	enrollmentconfig.PercentageSlotsValidator = enrollmentconfigDescPercentageSlots.Validators[0].(func(int) error)
	// enrollmentconfigDescLimitToEndTime is the schema descriptor for limit_to_end_time field.
	enrollmentconfigDescLimitToEndTime := enrollmentconfigFields[6].Descriptor()
	// enrollmentconfig.DefaultLimitToEndTime holds the default value on creation for the limit_to_end_time field.
	enrollmentconfig.DefaultLimitToEndTime = enrollmentconfigDescLimitToEndTime.Default.(bool)
	// enrollmentconfigDescRestrictToConfiguredUsers is the schema descriptor for restrict_to_configured_users field.
	enrollmentconfigDescRestrictToConfiguredUsers := enrollmentconfigFields[7].Descriptor()
	// enrollmentconfig.DefaultRestrictToConfiguredUsers holds the default value on creation for the restrict_to_configured_users field.
	enrollmentconfig.DefaultRestrictToConfiguredUsers = enrollmentconfigDescRestrictToConfiguredUsers.Default.(bool)
	// enrollmentconfigDescMaxWaitlistSessions is the schema descriptor for max_waitlist_sessions field.
	enrollmentconfigDescMaxWaitlistSessions := enrollmentconfigFields[8].Descriptor()
	// enrollmentconfig.DefaultMaxWaitlistSessions holds the default value on creation for the max_waitlist_sessions field.
	enrollmentconfig.DefaultMaxWaitlistSessions = enrollmentconfigDescMaxWaitlistSessions.Default.(int)
	// enrollmentconfig.MaxWaitlistSessionsValidator is a validator for the "max_waitlist_sessions" field. It is called by the builders before save.
	enrollmentconfig.MaxWaitlistSessionsValidator = enrollmentconfigDescMaxWaitlistSessions.Validators[0].(func(int) error)
	// enrollmentconfigDescAPIProvider is the schema descriptor for api_provider field.
	enrollmentconfigDescAPIProvider := enrollmentconfigFields[10].Descriptor()
	// enrollmentconfig.APIProviderValidator is a validator for the "api_provider" field. It is called by the builders before save.
	enrollmentconfig.APIProviderValidator = enrollmentconfigDescAPIProvider.Validators[0].(func(string) error)
	eventMixin := schema.Event{}.Mixin()
	eventMixinFields0 := eventMixin[0].Fields()
	_ = eventMixinFields0
	eventFields := schema.Event{}.Fields()
	_ = eventFields
	// eventDescCreatedAt is the schema descriptor for created_at field.
	eventDescCreatedAt := eventMixinFields0[0].Descriptor()
	// event.DefaultCreatedAt holds the default value on creation for the created_at field.
	event.DefaultCreatedAt = eventDescCreatedAt.Default.(func() time.Time)
	// eventDescUpdatedAt is the schema descriptor for updated_at field.
	eventDescUpdatedAt := eventMixinFields0[1].Descriptor()
	// event.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	event.DefaultUpdatedAt = eventDescUpdatedAt.Default.(func() time.Time)
	// event.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	event.UpdateDefaultUpdatedAt = eventDescUpdatedAt.UpdateDefault.(func() time.Time)
	// eventDescName is the schema descriptor for name field.
	eventDescName := eventFields[2].Descriptor()
	// event.NameValidator is a validator for the "name" field. It is called by the builders before save.
	event.NameValidator = func() func(string) error {
		validators := eventDescName.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(name string) error {
			for _, fn := range fns {
				if err := fn(name); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// eventDescSlug is the schema descriptor for slug field.
	eventDescSlug := eventFields[3].Descriptor()
	// event.SlugValidator is a validator for the "slug" field. It is called by the builders before save.
	event.SlugValidator = func() func(string) error {
		validators := eventDescSlug.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(slug string) error {
			for _, fn := range fns {
				if err := fn(slug); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	notificationMixin := schema.Notification{}.Mixin()
	notificationMixinFields0 := notificationMixin[0].Fields()
	_ = notificationMixinFields0
	notificationFields := schema.Notification{}.Fields()
	_ = notificationFields
	// notificationDescCreatedAt is the schema descriptor for created_at field.
	notificationDescCreatedAt := notificationMixinFields0[0].Descriptor()
	// notification.DefaultCreatedAt holds the default value on creation for the created_at field.
	notification.DefaultCreatedAt = notificationDescCreatedAt.Default.(func() time.Time)
	// notificationDescTitle is the schema descriptor for title field.
	notificationDescTitle := notificationFields[3].Descriptor()
	// notification.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	notification.TitleValidator = func() func(string) error {
		validators := notificationDescTitle.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(title string) error {
			for _, fn := range fns {
				if err := fn(title); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// notificationDescMessage is the schema descriptor for message field.
	notificationDescMessage := notificationFields[4].Descriptor()
	// notification.MessageValidator is a validator for the "message" field. It is called by the builders before save.
	notification.MessageValidator = func() func(string) error {
		validators := notificationDescMessage.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(message string) error {
			for _, fn := range fns {
				if err := fn(message); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// notificationDescRead is the schema descriptor for read field.
	notificationDescRead := notificationFields[7].Descriptor()
	// notification.DefaultRead holds the default value on creation for the read field.
	notification.DefaultRead = notificationDescRead.Default.(bool)
	sessionMixin := schema.Session{}.Mixin()
	sessionMixinFields0 := sessionMixin[0].Fields()
	_ = sessionMixinFields0
	sessionFields := schema.Session{}.Fields()
	_ = sessionFields
	// sessionDescCreatedAt is the schema descriptor for created_at field.
	sessionDescCreatedAt := sessionMixinFields0[0].Descriptor()
	// session.DefaultCreatedAt holds the default value on creation for the created_at field.
	session.DefaultCreatedAt = sessionDescCreatedAt.Default.(func() time.Time)
	// sessionDescUpdatedAt is the schema descriptor for updated_at field.
	sessionDescUpdatedAt := sessionMixinFields0[1].Descriptor()
	// session.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	session.DefaultUpdatedAt = sessionDescUpdatedAt.Default.(func() time.Time)
	// session.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	session.UpdateDefaultUpdatedAt = sessionDescUpdatedAt.UpdateDefault.(func() time.Time)
	// sessionDescTitle is the schema descriptor for title field.
	sessionDescTitle := sessionFields[3].Descriptor()
	// session.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	session.TitleValidator = func() func(string) error {
		validators := sessionDescTitle.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(title string) error {
			for _, fn := range fns {
				if err := fn(title); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// sessionDescSlug is the schema descriptor for slug field.
	sessionDescSlug := sessionFields[4].Descriptor()
	// session.SlugValidator is a validator for the "slug" field. It is called by the builders before save.
	session.SlugValidator = func() func(string) error {
		validators := sessionDescSlug.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(slug string) error {
			for _, fn := range fns {
				if err := fn(slug); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// sessionDescParticipantsLimit is the schema descriptor for participants_limit field.
	sessionDescParticipantsLimit := sessionFields[5].Descriptor()
	// session.DefaultParticipantsLimit holds the default value on creation for the participants_limit field.
	session.DefaultParticipantsLimit = sessionDescParticipantsLimit.Default.(int)
	// session.ParticipantsLimitValidator is a validator for the "participants_limit" field. It is called by the builders before save.
	session.ParticipantsLimitValidator = sessionDescParticipantsLimit.Validators[0].(func(int) error)
	// sessionDescMinAge is the schema descriptor for min_age field.
	sessionDescMinAge := sessionFields[6].Descriptor()
	// session.DefaultMinAge holds the default value on creation for the min_age field.
	session.DefaultMinAge = sessionDescMinAge.Default.(int)
	// session.MinAgeValidator is a validator for the "min_age" field. It is called by the builders before save.
	session.MinAgeValidator = sessionDescMinAge.Validators[0].(func(int) error)
	// sessionDescPresenterName is the schema descriptor for presenter_name field.
	sessionDescPresenterName := sessionFields[8].Descriptor()
	// session.PresenterNameValidator is a validator for the "presenter_name" field. It is called by the builders before save.
	session.PresenterNameValidator = sessionDescPresenterName.Validators[0].(func(string) error)
	sessionparticipationMixin := schema.SessionParticipation{}.Mixin()
	sessionparticipationMixinFields0 := sessionparticipationMixin[0].Fields()
	_ = sessionparticipationMixinFields0
	sessionparticipationFields := schema.SessionParticipation{}.Fields()
	_ = sessionparticipationFields
	// sessionparticipationDescCreatedAt is the schema descriptor for created_at field.
	sessionparticipationDescCreatedAt := sessionparticipationMixinFields0[0].Descriptor()
	// sessionparticipation.DefaultCreatedAt holds the default value on creation for the created_at field.
	sessionparticipation.DefaultCreatedAt = sessionparticipationDescCreatedAt.Default.(func() time.Time)
	// sessionparticipationDescUpdatedAt is the schema descriptor for updated_at field.
	sessionparticipationDescUpdatedAt := sessionparticipationMixinFields0[1].Descriptor()
	// sessionparticipation.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	sessionparticipation.DefaultUpdatedAt = sessionparticipationDescUpdatedAt.Default.(func() time.Time)
	// sessionparticipation.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	sessionparticipation.UpdateDefaultUpdatedAt = sessionparticipationDescUpdatedAt.UpdateDefault.(func() time.Time)
	// sessionparticipationDescStatus is the schema descriptor for status field.
	sessionparticipationDescStatus := sessionparticipationFields[4].Descriptor()
	// sessionparticipation.StatusValidator is a validator for the "status" field. It is called by the builders before save.
	sessionparticipation.StatusValidator = func() func(string) error {
		validators := sessionparticipationDescStatus.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(status string) error {
			for _, fn := range fns {
				if err := fn(status); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	spaceMixin := schema.Space{}.Mixin()
	spaceMixinFields0 := spaceMixin[0].Fields()
	_ = spaceMixinFields0
	spaceFields := schema.Space{}.Fields()
	_ = spaceFields
	// spaceDescCreatedAt is the schema descriptor for created_at field.
	spaceDescCreatedAt := spaceMixinFields0[0].Descriptor()
	// space.DefaultCreatedAt holds the default value on creation for the created_at field.
	space.DefaultCreatedAt = spaceDescCreatedAt.Default.(func() time.Time)
	// spaceDescUpdatedAt is the schema descriptor for updated_at field.
	spaceDescUpdatedAt := spaceMixinFields0[1].Descriptor()
	// space.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	space.DefaultUpdatedAt = spaceDescUpdatedAt.Default.(func() time.Time)
	// space.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	space.UpdateDefaultUpdatedAt = spaceDescUpdatedAt.UpdateDefault.(func() time.Time)
	// spaceDescName is the schema descriptor for name field.
	spaceDescName := spaceFields[2].Descriptor()
	// space.NameValidator is a validator for the "name" field. It is called by the builders before save.
	space.NameValidator = func() func(string) error {
		validators := spaceDescName.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(name string) error {
			for _, fn := range fns {
				if err := fn(name); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// spaceDescSlug is the schema descriptor for slug field.
	spaceDescSlug := spaceFields[3].Descriptor()
	// space.SlugValidator is a validator for the "slug" field. It is called by the builders before save.
	space.SlugValidator = func() func(string) error {
		validators := spaceDescSlug.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(slug string) error {
			for _, fn := range fns {
				if err := fn(slug); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	sphereMixin := schema.Sphere{}.Mixin()
	sphereMixinFields0 := sphereMixin[0].Fields()
	_ = sphereMixinFields0
	sphereFields := schema.Sphere{}.Fields()
	_ = sphereFields
	// sphereDescCreatedAt is the schema descriptor for created_at field.
	sphereDescCreatedAt := sphereMixinFields0[0].Descriptor()
	// sphere.DefaultCreatedAt holds the default value on creation for the created_at field.
	sphere.DefaultCreatedAt = sphereDescCreatedAt.Default.(func() time.Time)
	// sphereDescUpdatedAt is the schema descriptor for updated_at field.
	sphereDescUpdatedAt := sphereMixinFields0[1].Descriptor()
	// sphere.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	sphere.DefaultUpdatedAt = sphereDescUpdatedAt.Default.(func() time.Time)
	// sphere.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	sphere.UpdateDefaultUpdatedAt = sphereDescUpdatedAt.UpdateDefault.(func() time.Time)
	// sphereDescName is the schema descriptor for name field.
	sphereDescName := sphereFields[1].Descriptor()
	// sphere.NameValidator is a validator for the "name" field. It is called by the builders before save.
	sphere.NameValidator = func() func(string) error {
		validators := sphereDescName.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(name string) error {
			for _, fn := range fns {
				if err := fn(name); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// sphereDescHost is the schema descriptor for host field.
	sphereDescHost := sphereFields[2].Descriptor()
	// sphere.HostValidator is a validator for the "host" field. It is called by the builders before save.
	sphere.HostValidator = func() func(string) error {
		validators := sphereDescHost.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(host string) error {
			for _, fn := range fns {
				if err := fn(host); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// sphereDescIsOpen is the schema descriptor for is_open field.
	sphereDescIsOpen := sphereFields[3].Descriptor()
	// sphere.DefaultIsOpen holds the default value on creation for the is_open field.
	sphere.DefaultIsOpen = sphereDescIsOpen.Default.(bool)
	userMixin := schema.User{}.Mixin()
	userMixinFields0 := userMixin[0].Fields()
	_ = userMixinFields0
	userFields := schema.User{}.Fields()
	_ = userFields
	// userDescCreatedAt is the schema descriptor for created_at field.
	userDescCreatedAt := userMixinFields0[0].Descriptor()
	// user.DefaultCreatedAt holds the default value on creation for the created_at field.
	user.DefaultCreatedAt = userDescCreatedAt.Default.(func() time.Time)
	// userDescUpdatedAt is the schema descriptor for updated_at field.
	userDescUpdatedAt := userMixinFields0[1].Descriptor()
	// user.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	user.DefaultUpdatedAt = userDescUpdatedAt.Default.(func() time.Time)
	// user.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	user.UpdateDefaultUpdatedAt = userDescUpdatedAt.UpdateDefault.(func() time.Time)
	// userDescName is the schema descriptor for name field.
	userDescName := userFields[2].Descriptor()
	// user.NameValidator is a validator for the "name" field. It is called by the builders before save.
	user.NameValidator = func() func(string) error {
		validators := userDescName.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(name string) error {
			for _, fn := range fns {
				if err := fn(name); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// userDescSlug is the schema descriptor for slug field.
	userDescSlug := userFields[3].Descriptor()
	// user.SlugValidator is a validator for the "slug" field. It is called by the builders before save.
	user.SlugValidator = func() func(string) error {
		validators := userDescSlug.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(slug string) error {
			for _, fn := range fns {
				if err := fn(slug); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// userDescEmail is the schema descriptor for email field.
	userDescEmail := userFields[4].Descriptor()
	// user.EmailValidator is a validator for the "email" field. It is called by the builders before save.
	user.EmailValidator = userDescEmail.Validators[0].(func(string) error)
	// userDescIsActive is the schema descriptor for is_active field.
	userDescIsActive := userFields[5].Descriptor()
	// user.DefaultIsActive holds the default value on creation for the is_active field.
	user.DefaultIsActive = userDescIsActive.Default.(bool)
	userenrollmentconfigMixin := schema.UserEnrollmentConfig{}.Mixin()
	userenrollmentconfigMixinFields0 := userenrollmentconfigMixin[0].Fields()
	_ = userenrollmentconfigMixinFields0
	userenrollmentconfigFields := schema.UserEnrollmentConfig{}.Fields()
	_ = userenrollmentconfigFields
	// userenrollmentconfigDescCreatedAt is the schema descriptor for created_at field.
	userenrollmentconfigDescCreatedAt := userenrollmentconfigMixinFields0[0].Descriptor()
	// userenrollmentconfig.DefaultCreatedAt holds the default value on creation for the created_at field.
	userenrollmentconfig.DefaultCreatedAt = userenrollmentconfigDescCreatedAt.Default.(func() time.Time)
	// userenrollmentconfigDescUpdatedAt is the schema descriptor for updated_at field.
	userenrollmentconfigDescUpdatedAt := userenrollmentconfigMixinFields0[1].Descriptor()
	// userenrollmentconfig.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	userenrollmentconfig.DefaultUpdatedAt = userenrollmentconfigDescUpdatedAt.Default.(func() time.Time)
	// userenrollmentconfig.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	userenrollmentconfig.UpdateDefaultUpdatedAt = userenrollmentconfigDescUpdatedAt.UpdateDefault.(func() time.Time)
	// userenrollmentconfigDescUserEmail is the schema descriptor for user_email field.
	userenrollmentconfigDescUserEmail := userenrollmentconfigFields[2].Descriptor()
	// userenrollmentconfig.UserEmailValidator is a validator for the "user_email" field. It is called by the builders before save.
	userenrollmentconfig.UserEmailValidator = func() func(string) error {
		validators := userenrollmentconfigDescUserEmail.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(user_email string) error {
			for _, fn := range fns {
				if err := fn(user_email); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// userenrollmentconfigDescAllowedSlots is the schema descriptor for allowed_slots field.
	userenrollmentconfigDescAllowedSlots := userenrollmentconfigFields[3].Descriptor()
	// userenrollmentconfig.DefaultAllowedSlots holds the default value on creation for the allowed_slots field.
	userenrollmentconfig.DefaultAllowedSlots = userenrollmentconfigDescAllowedSlots.Default.(int)
	// userenrollmentconfig.AllowedSlotsValidator is a validator for the "allowed_slots" field. It is called by the builders before save.
	userenrollmentconfig.AllowedSlotsValidator = userenrollmentconfigDescAllowedSlots.Validators[0].(func(int) error)
	// userenrollmentconfigDescFetchedFromAPI is the schema descriptor for fetched_from_api field.
	userenrollmentconfigDescFetchedFromAPI := userenrollmentconfigFields[4].Descriptor()
	// userenrollmentconfig.DefaultFetchedFromAPI holds the default value on creation for the fetched_from_api field.
	userenrollmentconfig.DefaultFetchedFromAPI = userenrollmentconfigDescFetchedFromAPI.Default.(bool)
}
