// Code generated by ent, DO NOT EDIT.

package userenrollmentconfig

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"ludamus.io/enrolld/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int64) predicate.UserEnrollmentConfig {
	return predicate.UserEnrollmentConfig(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int64) predicate.UserEnrollmentConfig {
	return predicate.UserEnrollmentConfig(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int64) predicate.UserEnrollmentConfig {
	return predicate.UserEnrollmentConfig(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int64) predicate.UserEnrollmentConfig {
	return predicate.UserEnrollmentConfig(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int64) predicate.UserEnrollmentConfig {
	return predicate.UserEnrollmentConfig(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int64) predicate.UserEnrollmentConfig {
	return predicate.UserEnrollmentConfig(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int64) predicate.UserEnrollmentConfig {
	return predicate.UserEnrollmentConfig(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int64) predicate.UserEnrollmentConfig {
	return predicate.UserEnrollmentConfig(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int64) predicate.UserEnrollmentConfig {
	return predicate.UserEnrollmentConfig(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.UserEnrollmentConfig {
	return predicate.UserEnrollmentConfig(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.UserEnrollmentConfig {
	return predicate.UserEnrollmentConfig(sql.FieldEQ(FieldUpdatedAt, v))
}

// ConfigID applies equality check predicate on the "config_id" field. It's identical to ConfigIDEQ.
func ConfigID(v int64) predicate.UserEnrollmentConfig {
	return predicate.UserEnrollmentConfig(sql.FieldEQ(FieldConfigID, v))
}

// UserEmail applies equality check predicate on the "user_email" field. It's identical to UserEmailEQ.
func UserEmail(v string) predicate.UserEnrollmentConfig {
	return predicate.UserEnrollmentConfig(sql.FieldEQ(FieldUserEmail, v))
}

// AllowedSlots applies equality check predicate on the "allowed_slots" field. It's identical to AllowedSlotsEQ.
func AllowedSlots(v int) predicate.UserEnrollmentConfig {
	return predicate.UserEnrollmentConfig(sql.FieldEQ(FieldAllowedSlots, v))
}

// FetchedFromAPI applies equality check predicate on the "fetched_from_api" field. It's identical to FetchedFromAPIEQ.
func FetchedFromAPI(v bool) predicate.UserEnrollmentConfig {
	return predicate.UserEnrollmentConfig(sql.FieldEQ(FieldFetchedFromAPI, v))
}

// LastCheck applies equality check predicate on the "last_check" field. It's identical to LastCheckEQ.
func LastCheck(v time.Time) predicate.UserEnrollmentConfig {
	return predicate.UserEnrollmentConfig(sql.FieldEQ(FieldLastCheck, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.UserEnrollmentConfig {
	return predicate.UserEnrollmentConfig(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.UserEnrollmentConfig {
	return predicate.UserEnrollmentConfig(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.UserEnrollmentConfig {
	return predicate.UserEnrollmentConfig(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.UserEnrollmentConfig {
	return predicate.UserEnrollmentConfig(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.UserEnrollmentConfig {
	return predicate.UserEnrollmentConfig(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.UserEnrollmentConfig {
	return predicate.UserEnrollmentConfig(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.UserEnrollmentConfig {
	return predicate.UserEnrollmentConfig(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.UserEnrollmentConfig {
	return predicate.UserEnrollmentConfig(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.UserEnrollmentConfig {
	return predicate.UserEnrollmentConfig(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.UserEnrollmentConfig {
	return predicate.UserEnrollmentConfig(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.UserEnrollmentConfig {
	return predicate.UserEnrollmentConfig(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.UserEnrollmentConfig {
	return predicate.UserEnrollmentConfig(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.UserEnrollmentConfig {
	return predicate.UserEnrollmentConfig(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.UserEnrollmentConfig {
	return predicate.UserEnrollmentConfig(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.UserEnrollmentConfig {
	return predicate.UserEnrollmentConfig(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.UserEnrollmentConfig {
	return predicate.UserEnrollmentConfig(sql.FieldLTE(FieldUpdatedAt, v))
}

// ConfigIDEQ applies the EQ predicate on the "config_id" field.
func ConfigIDEQ(v int64) predicate.UserEnrollmentConfig {
	return predicate.UserEnrollmentConfig(sql.FieldEQ(FieldConfigID, v))
}

// ConfigIDNEQ applies the NEQ predicate on the "config_id" field.
func ConfigIDNEQ(v int64) predicate.UserEnrollmentConfig {
	return predicate.UserEnrollmentConfig(sql.FieldNEQ(FieldConfigID, v))
}

// ConfigIDIn applies the In predicate on the "config_id" field.
func ConfigIDIn(vs ...int64) predicate.UserEnrollmentConfig {
	return predicate.UserEnrollmentConfig(sql.FieldIn(FieldConfigID, vs...))
}

// ConfigIDNotIn applies the NotIn predicate on the "config_id" field.
func ConfigIDNotIn(vs ...int64) predicate.UserEnrollmentConfig {
	return predicate.UserEnrollmentConfig(sql.FieldNotIn(FieldConfigID, vs...))
}

// UserEmailEQ applies the EQ predicate on the "user_email" field.
func UserEmailEQ(v string) predicate.UserEnrollmentConfig {
	return predicate.UserEnrollmentConfig(sql.FieldEQ(FieldUserEmail, v))
}

// UserEmailNEQ applies the NEQ predicate on the "user_email" field.
func UserEmailNEQ(v string) predicate.UserEnrollmentConfig {
	return predicate.UserEnrollmentConfig(sql.FieldNEQ(FieldUserEmail, v))
}

// UserEmailIn applies the In predicate on the "user_email" field.
func UserEmailIn(vs ...string) predicate.UserEnrollmentConfig {
	return predicate.UserEnrollmentConfig(sql.FieldIn(FieldUserEmail, vs...))
}

// UserEmailNotIn applies the NotIn predicate on the "user_email" field.
func UserEmailNotIn(vs ...string) predicate.UserEnrollmentConfig {
	return predicate.UserEnrollmentConfig(sql.FieldNotIn(FieldUserEmail, vs...))
}

// UserEmailGT applies the GT predicate on the "user_email" field.
func UserEmailGT(v string) predicate.UserEnrollmentConfig {
	return predicate.UserEnrollmentConfig(sql.FieldGT(FieldUserEmail, v))
}

// UserEmailGTE applies the GTE predicate on the "user_email" field.
func UserEmailGTE(v string) predicate.UserEnrollmentConfig {
	return predicate.UserEnrollmentConfig(sql.FieldGTE(FieldUserEmail, v))
}

// UserEmailLT applies the LT predicate on the "user_email" field.
func UserEmailLT(v string) predicate.UserEnrollmentConfig {
	return predicate.UserEnrollmentConfig(sql.FieldLT(FieldUserEmail, v))
}

// UserEmailLTE applies the LTE predicate on the "user_email" field.
func UserEmailLTE(v string) predicate.UserEnrollmentConfig {
	return predicate.UserEnrollmentConfig(sql.FieldLTE(FieldUserEmail, v))
}

// UserEmailContains applies the Contains predicate on the "user_email" field.
func UserEmailContains(v string) predicate.UserEnrollmentConfig {
	return predicate.UserEnrollmentConfig(sql.FieldContains(FieldUserEmail, v))
}

// UserEmailHasPrefix applies the HasPrefix predicate on the "user_email" field.
func UserEmailHasPrefix(v string) predicate.UserEnrollmentConfig {
	return predicate.UserEnrollmentConfig(sql.FieldHasPrefix(FieldUserEmail, v))
}

// UserEmailHasSuffix applies the HasSuffix predicate on the "user_email" field.
func UserEmailHasSuffix(v string) predicate.UserEnrollmentConfig {
	return predicate.UserEnrollmentConfig(sql.FieldHasSuffix(FieldUserEmail, v))
}

// UserEmailEqualFold applies the EqualFold predicate on the "user_email" field.
func UserEmailEqualFold(v string) predicate.UserEnrollmentConfig {
	return predicate.UserEnrollmentConfig(sql.FieldEqualFold(FieldUserEmail, v))
}

// UserEmailContainsFold applies the ContainsFold predicate on the "user_email" field.
func UserEmailContainsFold(v string) predicate.UserEnrollmentConfig {
	return predicate.UserEnrollmentConfig(sql.FieldContainsFold(FieldUserEmail, v))
}

// AllowedSlotsEQ applies the EQ predicate on the "allowed_slots" field.
func AllowedSlotsEQ(v int) predicate.UserEnrollmentConfig {
	return predicate.UserEnrollmentConfig(sql.FieldEQ(FieldAllowedSlots, v))
}

// AllowedSlotsNEQ applies the NEQ predicate on the "allowed_slots" field.
func AllowedSlotsNEQ(v int) predicate.UserEnrollmentConfig {
	return predicate.UserEnrollmentConfig(sql.FieldNEQ(FieldAllowedSlots, v))
}

// AllowedSlotsIn applies the In predicate on the "allowed_slots" field.
func AllowedSlotsIn(vs ...int) predicate.UserEnrollmentConfig {
	return predicate.UserEnrollmentConfig(sql.FieldIn(FieldAllowedSlots, vs...))
}

// AllowedSlotsNotIn applies the NotIn predicate on the "allowed_slots" field.
func AllowedSlotsNotIn(vs ...int) predicate.UserEnrollmentConfig {
	return predicate.UserEnrollmentConfig(sql.FieldNotIn(FieldAllowedSlots, vs...))
}

// AllowedSlotsGT applies the GT predicate on the "allowed_slots" field.
func AllowedSlotsGT(v int) predicate.UserEnrollmentConfig {
	return predicate.UserEnrollmentConfig(sql.FieldGT(FieldAllowedSlots, v))
}

// AllowedSlotsGTE applies the GTE predicate on the "allowed_slots" field.
func AllowedSlotsGTE(v int) predicate.UserEnrollmentConfig {
	return predicate.UserEnrollmentConfig(sql.FieldGTE(FieldAllowedSlots, v))
}

// AllowedSlotsLT applies the LT predicate on the "allowed_slots" field.
func AllowedSlotsLT(v int) predicate.UserEnrollmentConfig {
	return predicate.UserEnrollmentConfig(sql.FieldLT(FieldAllowedSlots, v))
}

// AllowedSlotsLTE applies the LTE predicate on the "allowed_slots" field.
func AllowedSlotsLTE(v int) predicate.UserEnrollmentConfig {
	return predicate.UserEnrollmentConfig(sql.FieldLTE(FieldAllowedSlots, v))
}

// FetchedFromAPIEQ applies the EQ predicate on the "fetched_from_api" field.
func FetchedFromAPIEQ(v bool) predicate.UserEnrollmentConfig {
	return predicate.UserEnrollmentConfig(sql.FieldEQ(FieldFetchedFromAPI, v))
}

// FetchedFromAPINEQ applies the NEQ predicate on the "fetched_from_api" field.
func FetchedFromAPINEQ(v bool) predicate.UserEnrollmentConfig {
	return predicate.UserEnrollmentConfig(sql.FieldNEQ(FieldFetchedFromAPI, v))
}

// LastCheckEQ applies the EQ predicate on the "last_check" field.
func LastCheckEQ(v time.Time) predicate.UserEnrollmentConfig {
	return predicate.UserEnrollmentConfig(sql.FieldEQ(FieldLastCheck, v))
}

// LastCheckNEQ applies the NEQ predicate on the "last_check" field.
func LastCheckNEQ(v time.Time) predicate.UserEnrollmentConfig {
	return predicate.UserEnrollmentConfig(sql.FieldNEQ(FieldLastCheck, v))
}

// LastCheckIn applies the In predicate on the "last_check" field.
func LastCheckIn(vs ...time.Time) predicate.UserEnrollmentConfig {
	return predicate.UserEnrollmentConfig(sql.FieldIn(FieldLastCheck, vs...))
}

// LastCheckNotIn applies the NotIn predicate on the "last_check" field.
func LastCheckNotIn(vs ...time.Time) predicate.UserEnrollmentConfig {
	return predicate.UserEnrollmentConfig(sql.FieldNotIn(FieldLastCheck, vs...))
}

// LastCheckGT applies the GT predicate on the "last_check" field.
func LastCheckGT(v time.Time) predicate.UserEnrollmentConfig {
	return predicate.UserEnrollmentConfig(sql.FieldGT(FieldLastCheck, v))
}

// LastCheckGTE applies the GTE predicate on the "last_check" field.
func LastCheckGTE(v time.Time) predicate.UserEnrollmentConfig {
	return predicate.UserEnrollmentConfig(sql.FieldGTE(FieldLastCheck, v))
}

// LastCheckLT applies the LT predicate on the "last_check" field.
func LastCheckLT(v time.Time) predicate.UserEnrollmentConfig {
	return predicate.UserEnrollmentConfig(sql.FieldLT(FieldLastCheck, v))
}

// LastCheckLTE applies the LTE predicate on the "last_check" field.
func LastCheckLTE(v time.Time) predicate.UserEnrollmentConfig {
	return predicate.UserEnrollmentConfig(sql.FieldLTE(FieldLastCheck, v))
}

// LastCheckIsNil applies the IsNil predicate on the "last_check" field.
func LastCheckIsNil() predicate.UserEnrollmentConfig {
	return predicate.UserEnrollmentConfig(sql.FieldIsNull(FieldLastCheck))
}

// LastCheckNotNil applies the NotNil predicate on the "last_check" field.
func LastCheckNotNil() predicate.UserEnrollmentConfig {
	return predicate.UserEnrollmentConfig(sql.FieldNotNull(FieldLastCheck))
}

// HasConfig applies the HasEdge predicate on the "config" edge.
func HasConfig() predicate.UserEnrollmentConfig {
	return predicate.UserEnrollmentConfig(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ConfigTable, ConfigColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasConfigWith applies the HasEdge predicate on the "config" edge with a given conditions (other predicates).
func HasConfigWith(preds ...predicate.EnrollmentConfig) predicate.UserEnrollmentConfig {
	return predicate.UserEnrollmentConfig(func(s *sql.Selector) {
		step := newConfigStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.UserEnrollmentConfig) predicate.UserEnrollmentConfig {
	return predicate.UserEnrollmentConfig(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.UserEnrollmentConfig) predicate.UserEnrollmentConfig {
	return predicate.UserEnrollmentConfig(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.UserEnrollmentConfig) predicate.UserEnrollmentConfig {
	return predicate.UserEnrollmentConfig(sql.NotPredicates(p))
}
