// Code generated by ent, DO NOT EDIT.

package domainenrollmentconfig

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"ludamus.io/enrolld/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int64) predicate.DomainEnrollmentConfig {
	return predicate.DomainEnrollmentConfig(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int64) predicate.DomainEnrollmentConfig {
	return predicate.DomainEnrollmentConfig(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int64) predicate.DomainEnrollmentConfig {
	return predicate.DomainEnrollmentConfig(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int64) predicate.DomainEnrollmentConfig {
	return predicate.DomainEnrollmentConfig(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int64) predicate.DomainEnrollmentConfig {
	return predicate.DomainEnrollmentConfig(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int64) predicate.DomainEnrollmentConfig {
	return predicate.DomainEnrollmentConfig(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int64) predicate.DomainEnrollmentConfig {
	return predicate.DomainEnrollmentConfig(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int64) predicate.DomainEnrollmentConfig {
	return predicate.DomainEnrollmentConfig(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int64) predicate.DomainEnrollmentConfig {
	return predicate.DomainEnrollmentConfig(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.DomainEnrollmentConfig {
	return predicate.DomainEnrollmentConfig(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.DomainEnrollmentConfig {
	return predicate.DomainEnrollmentConfig(sql.FieldEQ(FieldUpdatedAt, v))
}

// ConfigID applies equality check predicate on the "config_id" field. It's identical to ConfigIDEQ.
func ConfigID(v int64) predicate.DomainEnrollmentConfig {
	return predicate.DomainEnrollmentConfig(sql.FieldEQ(FieldConfigID, v))
}

// Domain applies equality check predicate on the "domain" field. It's identical to DomainEQ.
func Domain(v string) predicate.DomainEnrollmentConfig {
	return predicate.DomainEnrollmentConfig(sql.FieldEQ(FieldDomain, v))
}

// AllowedSlotsPerUser applies equality check predicate on the "allowed_slots_per_user" field. It's identical to AllowedSlotsPerUserEQ.
func AllowedSlotsPerUser(v int) predicate.DomainEnrollmentConfig {
	return predicate.DomainEnrollmentConfig(sql.FieldEQ(FieldAllowedSlotsPerUser, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.DomainEnrollmentConfig {
	return predicate.DomainEnrollmentConfig(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.DomainEnrollmentConfig {
	return predicate.DomainEnrollmentConfig(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.DomainEnrollmentConfig {
	return predicate.DomainEnrollmentConfig(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.DomainEnrollmentConfig {
	return predicate.DomainEnrollmentConfig(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.DomainEnrollmentConfig {
	return predicate.DomainEnrollmentConfig(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.DomainEnrollmentConfig {
	return predicate.DomainEnrollmentConfig(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.DomainEnrollmentConfig {
	return predicate.DomainEnrollmentConfig(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.DomainEnrollmentConfig {
	return predicate.DomainEnrollmentConfig(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.DomainEnrollmentConfig {
	return predicate.DomainEnrollmentConfig(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.DomainEnrollmentConfig {
	return predicate.DomainEnrollmentConfig(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.DomainEnrollmentConfig {
	return predicate.DomainEnrollmentConfig(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.DomainEnrollmentConfig {
	return predicate.DomainEnrollmentConfig(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.DomainEnrollmentConfig {
	return predicate.DomainEnrollmentConfig(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.DomainEnrollmentConfig {
	return predicate.DomainEnrollmentConfig(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.DomainEnrollmentConfig {
	return predicate.DomainEnrollmentConfig(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.DomainEnrollmentConfig {
	return predicate.DomainEnrollmentConfig(sql.FieldLTE(FieldUpdatedAt, v))
}

// ConfigIDEQ applies the EQ predicate on the "config_id" field.
func ConfigIDEQ(v int64) predicate.DomainEnrollmentConfig {
	return predicate.DomainEnrollmentConfig(sql.FieldEQ(FieldConfigID, v))
}

// ConfigIDNEQ applies the NEQ predicate on the "config_id" field.
func ConfigIDNEQ(v int64) predicate.DomainEnrollmentConfig {
	return predicate.DomainEnrollmentConfig(sql.FieldNEQ(FieldConfigID, v))
}

// ConfigIDIn applies the In predicate on the "config_id" field.
func ConfigIDIn(vs ...int64) predicate.DomainEnrollmentConfig {
	return predicate.DomainEnrollmentConfig(sql.FieldIn(FieldConfigID, vs...))
}

// ConfigIDNotIn applies the NotIn predicate on the "config_id" field.
func ConfigIDNotIn(vs ...int64) predicate.DomainEnrollmentConfig {
	return predicate.DomainEnrollmentConfig(sql.FieldNotIn(FieldConfigID, vs...))
}

// DomainEQ applies the EQ predicate on the "domain" field.
func DomainEQ(v string) predicate.DomainEnrollmentConfig {
	return predicate.DomainEnrollmentConfig(sql.FieldEQ(FieldDomain, v))
}

// DomainNEQ applies the NEQ predicate on the "domain" field.
func DomainNEQ(v string) predicate.DomainEnrollmentConfig {
	return predicate.DomainEnrollmentConfig(sql.FieldNEQ(FieldDomain, v))
}

// DomainIn applies the In predicate on the "domain" field.
func DomainIn(vs ...string) predicate.DomainEnrollmentConfig {
	return predicate.DomainEnrollmentConfig(sql.FieldIn(FieldDomain, vs...))
}

// DomainNotIn applies the NotIn predicate on the "domain" field.
func DomainNotIn(vs ...string) predicate.DomainEnrollmentConfig {
	return predicate.DomainEnrollmentConfig(sql.FieldNotIn(FieldDomain, vs...))
}

// DomainGT applies the GT predicate on the "domain" field.
func DomainGT(v string) predicate.DomainEnrollmentConfig {
	return predicate.DomainEnrollmentConfig(sql.FieldGT(FieldDomain, v))
}

// DomainGTE applies the GTE predicate on the "domain" field.
func DomainGTE(v string) predicate.DomainEnrollmentConfig {
	return predicate.DomainEnrollmentConfig(sql.FieldGTE(FieldDomain, v))
}

// DomainLT applies the LT predicate on the "domain" field.
func DomainLT(v string) predicate.DomainEnrollmentConfig {
	return predicate.DomainEnrollmentConfig(sql.FieldLT(FieldDomain, v))
}

// DomainLTE applies the LTE predicate on the "domain" field.
func DomainLTE(v string) predicate.DomainEnrollmentConfig {
	return predicate.DomainEnrollmentConfig(sql.FieldLTE(FieldDomain, v))
}

// DomainContains applies the Contains predicate on the "domain" field.
func DomainContains(v string) predicate.DomainEnrollmentConfig {
	return predicate.DomainEnrollmentConfig(sql.FieldContains(FieldDomain, v))
}

// DomainHasPrefix applies the HasPrefix predicate on the "domain" field.
func DomainHasPrefix(v string) predicate.DomainEnrollmentConfig {
	return predicate.DomainEnrollmentConfig(sql.FieldHasPrefix(FieldDomain, v))
}

// DomainHasSuffix applies the HasSuffix predicate on the "domain" field.
func DomainHasSuffix(v string) predicate.DomainEnrollmentConfig {
	return predicate.DomainEnrollmentConfig(sql.FieldHasSuffix(FieldDomain, v))
}

// DomainEqualFold applies the EqualFold predicate on the "domain" field.
func DomainEqualFold(v string) predicate.DomainEnrollmentConfig {
	return predicate.DomainEnrollmentConfig(sql.FieldEqualFold(FieldDomain, v))
}

// DomainContainsFold applies the ContainsFold predicate on the "domain" field.
func DomainContainsFold(v string) predicate.DomainEnrollmentConfig {
	return predicate.DomainEnrollmentConfig(sql.FieldContainsFold(FieldDomain, v))
}

// AllowedSlotsPerUserEQ applies the EQ predicate on the "allowed_slots_per_user" field.
func AllowedSlotsPerUserEQ(v int) predicate.DomainEnrollmentConfig {
	return predicate.DomainEnrollmentConfig(sql.FieldEQ(FieldAllowedSlotsPerUser, v))
}

// AllowedSlotsPerUserNEQ applies the NEQ predicate on the "allowed_slots_per_user" field.
func AllowedSlotsPerUserNEQ(v int) predicate.DomainEnrollmentConfig {
	return predicate.DomainEnrollmentConfig(sql.FieldNEQ(FieldAllowedSlotsPerUser, v))
}

// AllowedSlotsPerUserIn applies the In predicate on the "allowed_slots_per_user" field.
func AllowedSlotsPerUserIn(vs ...int) predicate.DomainEnrollmentConfig {
	return predicate.DomainEnrollmentConfig(sql.FieldIn(FieldAllowedSlotsPerUser, vs...))
}

// AllowedSlotsPerUserNotIn applies the NotIn predicate on the "allowed_slots_per_user" field.
func AllowedSlotsPerUserNotIn(vs ...int) predicate.DomainEnrollmentConfig {
	return predicate.DomainEnrollmentConfig(sql.FieldNotIn(FieldAllowedSlotsPerUser, vs...))
}

// AllowedSlotsPerUserGT applies the GT predicate on the "allowed_slots_per_user" field.
func AllowedSlotsPerUserGT(v int) predicate.DomainEnrollmentConfig {
	return predicate.DomainEnrollmentConfig(sql.FieldGT(FieldAllowedSlotsPerUser, v))
}

// AllowedSlotsPerUserGTE applies the GTE predicate on the "allowed_slots_per_user" field.
func AllowedSlotsPerUserGTE(v int) predicate.DomainEnrollmentConfig {
	return predicate.DomainEnrollmentConfig(sql.FieldGTE(FieldAllowedSlotsPerUser, v))
}

// AllowedSlotsPerUserLT applies the LT predicate on the "allowed_slots_per_user" field.
func AllowedSlotsPerUserLT(v int) predicate.DomainEnrollmentConfig {
	return predicate.DomainEnrollmentConfig(sql.FieldLT(FieldAllowedSlotsPerUser, v))
}

// AllowedSlotsPerUserLTE applies the LTE predicate on the "allowed_slots_per_user" field.
func AllowedSlotsPerUserLTE(v int) predicate.DomainEnrollmentConfig {
	return predicate.DomainEnrollmentConfig(sql.FieldLTE(FieldAllowedSlotsPerUser, v))
}

// HasConfig applies the HasEdge predicate on the "config" edge.
func HasConfig() predicate.DomainEnrollmentConfig {
	return predicate.DomainEnrollmentConfig(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ConfigTable, ConfigColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasConfigWith applies the HasEdge predicate on the "config" edge with a given conditions (other predicates).
func HasConfigWith(preds ...predicate.EnrollmentConfig) predicate.DomainEnrollmentConfig {
	return predicate.DomainEnrollmentConfig(func(s *sql.Selector) {
		step := newConfigStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.DomainEnrollmentConfig) predicate.DomainEnrollmentConfig {
	return predicate.DomainEnrollmentConfig(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.DomainEnrollmentConfig) predicate.DomainEnrollmentConfig {
	return predicate.DomainEnrollmentConfig(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.DomainEnrollmentConfig) predicate.DomainEnrollmentConfig {
	return predicate.DomainEnrollmentConfig(sql.NotPredicates(p))
}
