// Code generated by ent, DO NOT EDIT.

package enrollmentconfig

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"ludamus.io/enrolld/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int64) predicate.EnrollmentConfig {
	return predicate.EnrollmentConfig(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int64) predicate.EnrollmentConfig {
	return predicate.EnrollmentConfig(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int64) predicate.EnrollmentConfig {
	return predicate.EnrollmentConfig(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int64) predicate.EnrollmentConfig {
	return predicate.EnrollmentConfig(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int64) predicate.EnrollmentConfig {
	return predicate.EnrollmentConfig(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int64) predicate.EnrollmentConfig {
	return predicate.EnrollmentConfig(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int64) predicate.EnrollmentConfig {
	return predicate.EnrollmentConfig(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int64) predicate.EnrollmentConfig {
	return predicate.EnrollmentConfig(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int64) predicate.EnrollmentConfig {
	return predicate.EnrollmentConfig(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.EnrollmentConfig {
	return predicate.EnrollmentConfig(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.EnrollmentConfig {
	return predicate.EnrollmentConfig(sql.FieldEQ(FieldUpdatedAt, v))
}

// EventID applies equality check predicate on the "event_id" field. It's identical to EventIDEQ.
func EventID(v int64) predicate.EnrollmentConfig {
	return predicate.EnrollmentConfig(sql.FieldEQ(FieldEventID, v))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.EnrollmentConfig {
	return predicate.EnrollmentConfig(sql.FieldEQ(FieldName, v))
}

// StartTime applies equality check predicate on the "start_time" field. It's identical to StartTimeEQ.
func StartTime(v time.Time) predicate.EnrollmentConfig {
	return predicate.EnrollmentConfig(sql.FieldEQ(FieldStartTime, v))
}

// EndTime applies equality check predicate on the "end_time" field. It's identical to EndTimeEQ.
func EndTime(v time.Time) predicate.EnrollmentConfig {
	return predicate.EnrollmentConfig(sql.FieldEQ(FieldEndTime, v))
}

// PercentageSlots applies equality check predicate on the "percentage_slots" field. It's identical to PercentageSlotsEQ.
func PercentageSlots(v int) predicate.EnrollmentConfig {
	return predicate.EnrollmentConfig(sql.FieldEQ(FieldPercentageSlots, v))
}

// LimitToEndTime applies equality check predicate on the "limit_to_end_time" field. It's identical to LimitToEndTimeEQ.
func LimitToEndTime(v bool) predicate.EnrollmentConfig {
	return predicate.EnrollmentConfig(sql.FieldEQ(FieldLimitToEndTime, v))
}

// RestrictToConfiguredUsers applies equality check predicate on the "restrict_to_configured_users" field. It's identical to RestrictToConfiguredUsersEQ.
func RestrictToConfiguredUsers(v bool) predicate.EnrollmentConfig {
	return predicate.EnrollmentConfig(sql.FieldEQ(FieldRestrictToConfiguredUsers, v))
}

// MaxWaitlistSessions applies equality check predicate on the "max_waitlist_sessions" field. It's identical to MaxWaitlistSessionsEQ.
func MaxWaitlistSessions(v int) predicate.EnrollmentConfig {
	return predicate.EnrollmentConfig(sql.FieldEQ(FieldMaxWaitlistSessions, v))
}

// BannerText applies equality check predicate on the "banner_text" field. It's identical to BannerTextEQ.
func BannerText(v string) predicate.EnrollmentConfig {
	return predicate.EnrollmentConfig(sql.FieldEQ(FieldBannerText, v))
}

// APIProvider applies equality check predicate on the "api_provider" field. It's identical to APIProviderEQ.
func APIProvider(v string) predicate.EnrollmentConfig {
	return predicate.EnrollmentConfig(sql.FieldEQ(FieldAPIProvider, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.EnrollmentConfig {
	return predicate.EnrollmentConfig(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.EnrollmentConfig {
	return predicate.EnrollmentConfig(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.EnrollmentConfig {
	return predicate.EnrollmentConfig(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.EnrollmentConfig {
	return predicate.EnrollmentConfig(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.EnrollmentConfig {
	return predicate.EnrollmentConfig(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.EnrollmentConfig {
	return predicate.EnrollmentConfig(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.EnrollmentConfig {
	return predicate.EnrollmentConfig(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.EnrollmentConfig {
	return predicate.EnrollmentConfig(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.EnrollmentConfig {
	return predicate.EnrollmentConfig(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.EnrollmentConfig {
	return predicate.EnrollmentConfig(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.EnrollmentConfig {
	return predicate.EnrollmentConfig(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.EnrollmentConfig {
	return predicate.EnrollmentConfig(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.EnrollmentConfig {
	return predicate.EnrollmentConfig(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.EnrollmentConfig {
	return predicate.EnrollmentConfig(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.EnrollmentConfig {
	return predicate.EnrollmentConfig(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.EnrollmentConfig {
	return predicate.EnrollmentConfig(sql.FieldLTE(FieldUpdatedAt, v))
}

// EventIDEQ applies the EQ predicate on the "event_id" field.
func EventIDEQ(v int64) predicate.EnrollmentConfig {
	return predicate.EnrollmentConfig(sql.FieldEQ(FieldEventID, v))
}

// EventIDNEQ applies the NEQ predicate on the "event_id" field.
func EventIDNEQ(v int64) predicate.EnrollmentConfig {
	return predicate.EnrollmentConfig(sql.FieldNEQ(FieldEventID, v))
}

// EventIDIn applies the In predicate on the "event_id" field.
func EventIDIn(vs ...int64) predicate.EnrollmentConfig {
	return predicate.EnrollmentConfig(sql.FieldIn(FieldEventID, vs...))
}

// EventIDNotIn applies the NotIn predicate on the "event_id" field.
func EventIDNotIn(vs ...int64) predicate.EnrollmentConfig {
	return predicate.EnrollmentConfig(sql.FieldNotIn(FieldEventID, vs...))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.EnrollmentConfig {
	return predicate.EnrollmentConfig(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.EnrollmentConfig {
	return predicate.EnrollmentConfig(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.EnrollmentConfig {
	return predicate.EnrollmentConfig(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.EnrollmentConfig {
	return predicate.EnrollmentConfig(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.EnrollmentConfig {
	return predicate.EnrollmentConfig(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.EnrollmentConfig {
	return predicate.EnrollmentConfig(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.EnrollmentConfig {
	return predicate.EnrollmentConfig(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.EnrollmentConfig {
	return predicate.EnrollmentConfig(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.EnrollmentConfig {
	return predicate.EnrollmentConfig(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.EnrollmentConfig {
	return predicate.EnrollmentConfig(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.EnrollmentConfig {
	return predicate.EnrollmentConfig(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.EnrollmentConfig {
	return predicate.EnrollmentConfig(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.EnrollmentConfig {
	return predicate.EnrollmentConfig(sql.FieldContainsFold(FieldName, v))
}

// StartTimeEQ applies the EQ predicate on the "start_time" field.
func StartTimeEQ(v time.Time) predicate.EnrollmentConfig {
	return predicate.EnrollmentConfig(sql.FieldEQ(FieldStartTime, v))
}

// StartTimeNEQ applies the NEQ predicate on the "start_time" field.
func StartTimeNEQ(v time.Time) predicate.EnrollmentConfig {
	return predicate.EnrollmentConfig(sql.FieldNEQ(FieldStartTime, v))
}

// StartTimeIn applies the In predicate on the "start_time" field.
func StartTimeIn(vs ...time.Time) predicate.EnrollmentConfig {
	return predicate.EnrollmentConfig(sql.FieldIn(FieldStartTime, vs...))
}

// StartTimeNotIn applies the NotIn predicate on the "start_time" field.
func StartTimeNotIn(vs ...time.Time) predicate.EnrollmentConfig {
	return predicate.EnrollmentConfig(sql.FieldNotIn(FieldStartTime, vs...))
}

// StartTimeGT applies the GT predicate on the "start_time" field.
func StartTimeGT(v time.Time) predicate.EnrollmentConfig {
	return predicate.EnrollmentConfig(sql.FieldGT(FieldStartTime, v))
}

// StartTimeGTE applies the GTE predicate on the "start_time" field.
func StartTimeGTE(v time.Time) predicate.EnrollmentConfig {
	return predicate.EnrollmentConfig(sql.FieldGTE(FieldStartTime, v))
}

// StartTimeLT applies the LT predicate on the "start_time" field.
func StartTimeLT(v time.Time) predicate.EnrollmentConfig {
	return predicate.EnrollmentConfig(sql.FieldLT(FieldStartTime, v))
}

// StartTimeLTE applies the LTE predicate on the "start_time" field.
func StartTimeLTE(v time.Time) predicate.EnrollmentConfig {
	return predicate.EnrollmentConfig(sql.FieldLTE(FieldStartTime, v))
}

// EndTimeEQ applies the EQ predicate on the "end_time" field.
func EndTimeEQ(v time.Time) predicate.EnrollmentConfig {
	return predicate.EnrollmentConfig(sql.FieldEQ(FieldEndTime, v))
}

// EndTimeNEQ applies the NEQ predicate on the "end_time" field.
func EndTimeNEQ(v time.Time) predicate.EnrollmentConfig {
	return predicate.EnrollmentConfig(sql.FieldNEQ(FieldEndTime, v))
}

// EndTimeIn applies the In predicate on the "end_time" field.
func EndTimeIn(vs ...time.Time) predicate.EnrollmentConfig {
	return predicate.EnrollmentConfig(sql.FieldIn(FieldEndTime, vs...))
}

// EndTimeNotIn applies the NotIn predicate on the "end_time" field.
func EndTimeNotIn(vs ...time.Time) predicate.EnrollmentConfig {
	return predicate.EnrollmentConfig(sql.FieldNotIn(FieldEndTime, vs...))
}

// EndTimeGT applies the GT predicate on the "end_time" field.
func EndTimeGT(v time.Time) predicate.EnrollmentConfig {
	return predicate.EnrollmentConfig(sql.FieldGT(FieldEndTime, v))
}

// EndTimeGTE applies the GTE predicate on the "end_time" field.
func EndTimeGTE(v time.Time) predicate.EnrollmentConfig {
	return predicate.EnrollmentConfig(sql.FieldGTE(FieldEndTime, v))
}

// EndTimeLT applies the LT predicate on the "end_time" field.
func EndTimeLT(v time.Time) predicate.EnrollmentConfig {
	return predicate.EnrollmentConfig(sql.FieldLT(FieldEndTime, v))
}

// EndTimeLTE applies the LTE predicate on the "end_time" field.
func EndTimeLTE(v time.Time) predicate.EnrollmentConfig {
	return predicate.EnrollmentConfig(sql.FieldLTE(FieldEndTime, v))
}

// PercentageSlotsEQ applies the EQ predicate on the "percentage_slots" field.
func PercentageSlotsEQ(v int) predicate.EnrollmentConfig {
	return predicate.EnrollmentConfig(sql.FieldEQ(FieldPercentageSlots, v))
}

// PercentageSlotsNEQ applies the NEQ predicate on the "percentage_slots" field.
func PercentageSlotsNEQ(v int) predicate.EnrollmentConfig {
	return predicate.EnrollmentConfig(sql.FieldNEQ(FieldPercentageSlots, v))
}

// PercentageSlotsIn applies the In predicate on the "percentage_slots" field.
func PercentageSlotsIn(vs ...int) predicate.EnrollmentConfig {
	return predicate.EnrollmentConfig(sql.FieldIn(FieldPercentageSlots, vs...))
}

// PercentageSlotsNotIn applies the NotIn predicate on the "percentage_slots" field.
func PercentageSlotsNotIn(vs ...int) predicate.EnrollmentConfig {
	return predicate.EnrollmentConfig(sql.FieldNotIn(FieldPercentageSlots, vs...))
}

// PercentageSlotsGT applies the GT predicate on the "percentage_slots" field.
func PercentageSlotsGT(v int) predicate.EnrollmentConfig {
	return predicate.EnrollmentConfig(sql.FieldGT(FieldPercentageSlots, v))
}

// PercentageSlotsGTE applies the GTE predicate on the "percentage_slots" field.
func PercentageSlotsGTE(v int) predicate.EnrollmentConfig {
	return predicate.EnrollmentConfig(sql.FieldGTE(FieldPercentageSlots, v))
}

// PercentageSlotsLT applies the LT predicate on the "percentage_slots" field.
func PercentageSlotsLT(v int) predicate.EnrollmentConfig {
	return predicate.EnrollmentConfig(sql.FieldLT(FieldPercentageSlots, v))
}

// PercentageSlotsLTE applies the LTE predicate on the "percentage_slots" field.
func PercentageSlotsLTE(v int) predicate.EnrollmentConfig {
	return predicate.EnrollmentConfig(sql.FieldLTE(FieldPercentageSlots, v))
}

// LimitToEndTimeEQ applies the EQ predicate on the "limit_to_end_time" field.
func LimitToEndTimeEQ(v bool) predicate.EnrollmentConfig {
	return predicate.EnrollmentConfig(sql.FieldEQ(FieldLimitToEndTime, v))
}

// LimitToEndTimeNEQ applies the NEQ predicate on the "limit_to_end_time" field.
func LimitToEndTimeNEQ(v bool) predicate.EnrollmentConfig {
	return predicate.EnrollmentConfig(sql.FieldNEQ(FieldLimitToEndTime, v))
}

// RestrictToConfiguredUsersEQ applies the EQ predicate on the "restrict_to_configured_users" field.
func RestrictToConfiguredUsersEQ(v bool) predicate.EnrollmentConfig {
	return predicate.EnrollmentConfig(sql.FieldEQ(FieldRestrictToConfiguredUsers, v))
}

// RestrictToConfiguredUsersNEQ applies the NEQ predicate on the "restrict_to_configured_users" field.
func RestrictToConfiguredUsersNEQ(v bool) predicate.EnrollmentConfig {
	return predicate.EnrollmentConfig(sql.FieldNEQ(FieldRestrictToConfiguredUsers, v))
}

// MaxWaitlistSessionsEQ applies the EQ predicate on the "max_waitlist_sessions" field.
func MaxWaitlistSessionsEQ(v int) predicate.EnrollmentConfig {
	return predicate.EnrollmentConfig(sql.FieldEQ(FieldMaxWaitlistSessions, v))
}

// MaxWaitlistSessionsNEQ applies the NEQ predicate on the "max_waitlist_sessions" field.
func MaxWaitlistSessionsNEQ(v int) predicate.EnrollmentConfig {
	return predicate.EnrollmentConfig(sql.FieldNEQ(FieldMaxWaitlistSessions, v))
}

// MaxWaitlistSessionsIn applies the In predicate on the "max_waitlist_sessions" field.
func MaxWaitlistSessionsIn(vs ...int) predicate.EnrollmentConfig {
	return predicate.EnrollmentConfig(sql.FieldIn(FieldMaxWaitlistSessions, vs...))
}

// MaxWaitlistSessionsNotIn applies the NotIn predicate on the "max_waitlist_sessions" field.
func MaxWaitlistSessionsNotIn(vs ...int) predicate.EnrollmentConfig {
	return predicate.EnrollmentConfig(sql.FieldNotIn(FieldMaxWaitlistSessions, vs...))
}

// MaxWaitlistSessionsGT applies the GT predicate on the "max_waitlist_sessions" field.
func MaxWaitlistSessionsGT(v int) predicate.EnrollmentConfig {
	return predicate.EnrollmentConfig(sql.FieldGT(FieldMaxWaitlistSessions, v))
}

// MaxWaitlistSessionsGTE applies the GTE predicate on the "max_waitlist_sessions" field.
func MaxWaitlistSessionsGTE(v int) predicate.EnrollmentConfig {
	return predicate.EnrollmentConfig(sql.FieldGTE(FieldMaxWaitlistSessions, v))
}

// MaxWaitlistSessionsLT applies the LT predicate on the "max_waitlist_sessions" field.
func MaxWaitlistSessionsLT(v int) predicate.EnrollmentConfig {
	return predicate.EnrollmentConfig(sql.FieldLT(FieldMaxWaitlistSessions, v))
}

// MaxWaitlistSessionsLTE applies the LTE predicate on the "max_waitlist_sessions" field.
func MaxWaitlistSessionsLTE(v int) predicate.EnrollmentConfig {
	return predicate.EnrollmentConfig(sql.FieldLTE(FieldMaxWaitlistSessions, v))
}

// BannerTextEQ applies the EQ predicate on the "banner_text" field.
func BannerTextEQ(v string) predicate.EnrollmentConfig {
	return predicate.EnrollmentConfig(sql.FieldEQ(FieldBannerText, v))
}

// BannerTextNEQ applies the NEQ predicate on the "banner_text" field.
func BannerTextNEQ(v string) predicate.EnrollmentConfig {
	return predicate.EnrollmentConfig(sql.FieldNEQ(FieldBannerText, v))
}

// BannerTextIn applies the In predicate on the "banner_text" field.
func BannerTextIn(vs ...string) predicate.EnrollmentConfig {
	return predicate.EnrollmentConfig(sql.FieldIn(FieldBannerText, vs...))
}

// BannerTextNotIn applies the NotIn predicate on the "banner_text" field.
func BannerTextNotIn(vs ...string) predicate.EnrollmentConfig {
	return predicate.EnrollmentConfig(sql.FieldNotIn(FieldBannerText, vs...))
}

// BannerTextGT applies the GT predicate on the "banner_text" field.
func BannerTextGT(v string) predicate.EnrollmentConfig {
	return predicate.EnrollmentConfig(sql.FieldGT(FieldBannerText, v))
}

// BannerTextGTE applies the GTE predicate on the "banner_text" field.
func BannerTextGTE(v string) predicate.EnrollmentConfig {
	return predicate.EnrollmentConfig(sql.FieldGTE(FieldBannerText, v))
}

// BannerTextLT applies the LT predicate on the "banner_text" field.
func BannerTextLT(v string) predicate.EnrollmentConfig {
	return predicate.EnrollmentConfig(sql.FieldLT(FieldBannerText, v))
}

// BannerTextLTE applies the LTE predicate on the "banner_text" field.
func BannerTextLTE(v string) predicate.EnrollmentConfig {
	return predicate.EnrollmentConfig(sql.FieldLTE(FieldBannerText, v))
}

// BannerTextContains applies the Contains predicate on the "banner_text" field.
func BannerTextContains(v string) predicate.EnrollmentConfig {
	return predicate.EnrollmentConfig(sql.FieldContains(FieldBannerText, v))
}

// BannerTextHasPrefix applies the HasPrefix predicate on the "banner_text" field.
func BannerTextHasPrefix(v string) predicate.EnrollmentConfig {
	return predicate.EnrollmentConfig(sql.FieldHasPrefix(FieldBannerText, v))
}

// BannerTextHasSuffix applies the HasSuffix predicate on the "banner_text" field.
func BannerTextHasSuffix(v string) predicate.EnrollmentConfig {
	return predicate.EnrollmentConfig(sql.FieldHasSuffix(FieldBannerText, v))
}

// BannerTextIsNil applies the IsNil predicate on the "banner_text" field.
func BannerTextIsNil() predicate.EnrollmentConfig {
	return predicate.EnrollmentConfig(sql.FieldIsNull(FieldBannerText))
}

// BannerTextNotNil applies the NotNil predicate on the "banner_text" field.
func BannerTextNotNil() predicate.EnrollmentConfig {
	return predicate.EnrollmentConfig(sql.FieldNotNull(FieldBannerText))
}

// BannerTextEqualFold applies the EqualFold predicate on the "banner_text" field.
func BannerTextEqualFold(v string) predicate.EnrollmentConfig {
	return predicate.EnrollmentConfig(sql.FieldEqualFold(FieldBannerText, v))
}

// BannerTextContainsFold applies the ContainsFold predicate on the "banner_text" field.
func BannerTextContainsFold(v string) predicate.EnrollmentConfig {
	return predicate.EnrollmentConfig(sql.FieldContainsFold(FieldBannerText, v))
}

// APIProviderEQ applies the EQ predicate on the "api_provider" field.
func APIProviderEQ(v string) predicate.EnrollmentConfig {
	return predicate.EnrollmentConfig(sql.FieldEQ(FieldAPIProvider, v))
}

// APIProviderNEQ applies the NEQ predicate on the "api_provider" field.
func APIProviderNEQ(v string) predicate.EnrollmentConfig {
	return predicate.EnrollmentConfig(sql.FieldNEQ(FieldAPIProvider, v))
}

// APIProviderIn applies the In predicate on the "api_provider" field.
func APIProviderIn(vs ...string) predicate.EnrollmentConfig {
	return predicate.EnrollmentConfig(sql.FieldIn(FieldAPIProvider, vs...))
}

// APIProviderNotIn applies the NotIn predicate on the "api_provider" field.
func APIProviderNotIn(vs ...string) predicate.EnrollmentConfig {
	return predicate.EnrollmentConfig(sql.FieldNotIn(FieldAPIProvider, vs...))
}

// APIProviderGT applies the GT predicate on the "api_provider" field.
func APIProviderGT(v string) predicate.EnrollmentConfig {
	return predicate.EnrollmentConfig(sql.FieldGT(FieldAPIProvider, v))
}

// APIProviderGTE applies the GTE predicate on the "api_provider" field.
func APIProviderGTE(v string) predicate.EnrollmentConfig {
	return predicate.EnrollmentConfig(sql.FieldGTE(FieldAPIProvider, v))
}

// APIProviderLT applies the LT predicate on the "api_provider" field.
func APIProviderLT(v string) predicate.EnrollmentConfig {
	return predicate.EnrollmentConfig(sql.FieldLT(FieldAPIProvider, v))
}

// APIProviderLTE applies the LTE predicate on the "api_provider" field.
func APIProviderLTE(v string) predicate.EnrollmentConfig {
	return predicate.EnrollmentConfig(sql.FieldLTE(FieldAPIProvider, v))
}

// APIProviderContains applies the Contains predicate on the "api_provider" field.
func APIProviderContains(v string) predicate.EnrollmentConfig {
	return predicate.EnrollmentConfig(sql.FieldContains(FieldAPIProvider, v))
}

// APIProviderHasPrefix applies the HasPrefix predicate on the "api_provider" field.
func APIProviderHasPrefix(v string) predicate.EnrollmentConfig {
	return predicate.EnrollmentConfig(sql.FieldHasPrefix(FieldAPIProvider, v))
}

// APIProviderHasSuffix applies the HasSuffix predicate on the "api_provider" field.
func APIProviderHasSuffix(v string) predicate.EnrollmentConfig {
	return predicate.EnrollmentConfig(sql.FieldHasSuffix(FieldAPIProvider, v))
}

// APIProviderIsNil applies the IsNil predicate on the "api_provider" field.
func APIProviderIsNil() predicate.EnrollmentConfig {
	return predicate.EnrollmentConfig(sql.FieldIsNull(FieldAPIProvider))
}

// APIProviderNotNil applies the NotNil predicate on the "api_provider" field.
func APIProviderNotNil() predicate.EnrollmentConfig {
	return predicate.EnrollmentConfig(sql.FieldNotNull(FieldAPIProvider))
}

// APIProviderEqualFold applies the EqualFold predicate on the "api_provider" field.
func APIProviderEqualFold(v string) predicate.EnrollmentConfig {
	return predicate.EnrollmentConfig(sql.FieldEqualFold(FieldAPIProvider, v))
}

// APIProviderContainsFold applies the ContainsFold predicate on the "api_provider" field.
func APIProviderContainsFold(v string) predicate.EnrollmentConfig {
	return predicate.EnrollmentConfig(sql.FieldContainsFold(FieldAPIProvider, v))
}

// HasEvent applies the HasEdge predicate on the "event" edge.
func HasEvent() predicate.EnrollmentConfig {
	return predicate.EnrollmentConfig(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, EventTable, EventColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasEventWith applies the HasEdge predicate on the "event" edge with a given conditions (other predicates).
func HasEventWith(preds ...predicate.Event) predicate.EnrollmentConfig {
	return predicate.EnrollmentConfig(func(s *sql.Selector) {
		step := newEventStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasUserConfigs applies the HasEdge predicate on the "user_configs" edge.
func HasUserConfigs() predicate.EnrollmentConfig {
	return predicate.EnrollmentConfig(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, UserConfigsTable, UserConfigsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasUserConfigsWith applies the HasEdge predicate on the "user_configs" edge with a given conditions (other predicates).
func HasUserConfigsWith(preds ...predicate.UserEnrollmentConfig) predicate.EnrollmentConfig {
	return predicate.EnrollmentConfig(func(s *sql.Selector) {
		step := newUserConfigsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasDomainConfigs applies the HasEdge predicate on the "domain_configs" edge.
func HasDomainConfigs() predicate.EnrollmentConfig {
	return predicate.EnrollmentConfig(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, DomainConfigsTable, DomainConfigsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasDomainConfigsWith applies the HasEdge predicate on the "domain_configs" edge with a given conditions (other predicates).
func HasDomainConfigsWith(preds ...predicate.DomainEnrollmentConfig) predicate.EnrollmentConfig {
	return predicate.EnrollmentConfig(func(s *sql.Selector) {
		step := newDomainConfigsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.EnrollmentConfig) predicate.EnrollmentConfig {
	return predicate.EnrollmentConfig(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.EnrollmentConfig) predicate.EnrollmentConfig {
	return predicate.EnrollmentConfig(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.EnrollmentConfig) predicate.EnrollmentConfig {
	return predicate.EnrollmentConfig(sql.NotPredicates(p))
}
