// Code generated by ent, DO NOT EDIT.

package sessionparticipation

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"ludamus.io/enrolld/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int64) predicate.SessionParticipation {
	return predicate.SessionParticipation(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int64) predicate.SessionParticipation {
	return predicate.SessionParticipation(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int64) predicate.SessionParticipation {
	return predicate.SessionParticipation(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int64) predicate.SessionParticipation {
	return predicate.SessionParticipation(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int64) predicate.SessionParticipation {
	return predicate.SessionParticipation(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int64) predicate.SessionParticipation {
	return predicate.SessionParticipation(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int64) predicate.SessionParticipation {
	return predicate.SessionParticipation(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int64) predicate.SessionParticipation {
	return predicate.SessionParticipation(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int64) predicate.SessionParticipation {
	return predicate.SessionParticipation(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.SessionParticipation {
	return predicate.SessionParticipation(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.SessionParticipation {
	return predicate.SessionParticipation(sql.FieldEQ(FieldUpdatedAt, v))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v int64) predicate.SessionParticipation {
	return predicate.SessionParticipation(sql.FieldEQ(FieldSessionID, v))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v int64) predicate.SessionParticipation {
	return predicate.SessionParticipation(sql.FieldEQ(FieldUserID, v))
}

// EnrolledByID applies equality check predicate on the "enrolled_by_id" field. It's identical to EnrolledByIDEQ.
func EnrolledByID(v int64) predicate.SessionParticipation {
	return predicate.SessionParticipation(sql.FieldEQ(FieldEnrolledByID, v))
}

// Status applies equality check predicate on the "status" field. It's identical to StatusEQ.
func Status(v string) predicate.SessionParticipation {
	return predicate.SessionParticipation(sql.FieldEQ(FieldStatus, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.SessionParticipation {
	return predicate.SessionParticipation(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.SessionParticipation {
	return predicate.SessionParticipation(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.SessionParticipation {
	return predicate.SessionParticipation(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.SessionParticipation {
	return predicate.SessionParticipation(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.SessionParticipation {
	return predicate.SessionParticipation(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.SessionParticipation {
	return predicate.SessionParticipation(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.SessionParticipation {
	return predicate.SessionParticipation(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.SessionParticipation {
	return predicate.SessionParticipation(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.SessionParticipation {
	return predicate.SessionParticipation(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.SessionParticipation {
	return predicate.SessionParticipation(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.SessionParticipation {
	return predicate.SessionParticipation(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.SessionParticipation {
	return predicate.SessionParticipation(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.SessionParticipation {
	return predicate.SessionParticipation(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.SessionParticipation {
	return predicate.SessionParticipation(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.SessionParticipation {
	return predicate.SessionParticipation(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.SessionParticipation {
	return predicate.SessionParticipation(sql.FieldLTE(FieldUpdatedAt, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v int64) predicate.SessionParticipation {
	return predicate.SessionParticipation(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v int64) predicate.SessionParticipation {
	return predicate.SessionParticipation(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...int64) predicate.SessionParticipation {
	return predicate.SessionParticipation(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...int64) predicate.SessionParticipation {
	return predicate.SessionParticipation(sql.FieldNotIn(FieldSessionID, vs...))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v int64) predicate.SessionParticipation {
	return predicate.SessionParticipation(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v int64) predicate.SessionParticipation {
	return predicate.SessionParticipation(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...int64) predicate.SessionParticipation {
	return predicate.SessionParticipation(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...int64) predicate.SessionParticipation {
	return predicate.SessionParticipation(sql.FieldNotIn(FieldUserID, vs...))
}

// EnrolledByIDEQ applies the EQ predicate on the "enrolled_by_id" field.
func EnrolledByIDEQ(v int64) predicate.SessionParticipation {
	return predicate.SessionParticipation(sql.FieldEQ(FieldEnrolledByID, v))
}

// EnrolledByIDNEQ applies the NEQ predicate on the "enrolled_by_id" field.
func EnrolledByIDNEQ(v int64) predicate.SessionParticipation {
	return predicate.SessionParticipation(sql.FieldNEQ(FieldEnrolledByID, v))
}

// EnrolledByIDIn applies the In predicate on the "enrolled_by_id" field.
func EnrolledByIDIn(vs ...int64) predicate.SessionParticipation {
	return predicate.SessionParticipation(sql.FieldIn(FieldEnrolledByID, vs...))
}

// EnrolledByIDNotIn applies the NotIn predicate on the "enrolled_by_id" field.
func EnrolledByIDNotIn(vs ...int64) predicate.SessionParticipation {
	return predicate.SessionParticipation(sql.FieldNotIn(FieldEnrolledByID, vs...))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v string) predicate.SessionParticipation {
	return predicate.SessionParticipation(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v string) predicate.SessionParticipation {
	return predicate.SessionParticipation(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...string) predicate.SessionParticipation {
	return predicate.SessionParticipation(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...string) predicate.SessionParticipation {
	return predicate.SessionParticipation(sql.FieldNotIn(FieldStatus, vs...))
}

// StatusGT applies the GT predicate on the "status" field.
func StatusGT(v string) predicate.SessionParticipation {
	return predicate.SessionParticipation(sql.FieldGT(FieldStatus, v))
}

// StatusGTE applies the GTE predicate on the "status" field.
func StatusGTE(v string) predicate.SessionParticipation {
	return predicate.SessionParticipation(sql.FieldGTE(FieldStatus, v))
}

// StatusLT applies the LT predicate on the "status" field.
func StatusLT(v string) predicate.SessionParticipation {
	return predicate.SessionParticipation(sql.FieldLT(FieldStatus, v))
}

// StatusLTE applies the LTE predicate on the "status" field.
func StatusLTE(v string) predicate.SessionParticipation {
	return predicate.SessionParticipation(sql.FieldLTE(FieldStatus, v))
}

// StatusContains applies the Contains predicate on the "status" field.
func StatusContains(v string) predicate.SessionParticipation {
	return predicate.SessionParticipation(sql.FieldContains(FieldStatus, v))
}

// StatusHasPrefix applies the HasPrefix predicate on the "status" field.
func StatusHasPrefix(v string) predicate.SessionParticipation {
	return predicate.SessionParticipation(sql.FieldHasPrefix(FieldStatus, v))
}

// StatusHasSuffix applies the HasSuffix predicate on the "status" field.
func StatusHasSuffix(v string) predicate.SessionParticipation {
	return predicate.SessionParticipation(sql.FieldHasSuffix(FieldStatus, v))
}

// StatusEqualFold applies the EqualFold predicate on the "status" field.
func StatusEqualFold(v string) predicate.SessionParticipation {
	return predicate.SessionParticipation(sql.FieldEqualFold(FieldStatus, v))
}

// StatusContainsFold applies the ContainsFold predicate on the "status" field.
func StatusContainsFold(v string) predicate.SessionParticipation {
	return predicate.SessionParticipation(sql.FieldContainsFold(FieldStatus, v))
}

// HasSession applies the HasEdge predicate on the "session" edge.
func HasSession() predicate.SessionParticipation {
	return predicate.SessionParticipation(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, SessionTable, SessionColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasSessionWith applies the HasEdge predicate on the "session" edge with a given conditions (other predicates).
func HasSessionWith(preds ...predicate.Session) predicate.SessionParticipation {
	return predicate.SessionParticipation(func(s *sql.Selector) {
		step := newSessionStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasUser applies the HasEdge predicate on the "user" edge.
func HasUser() predicate.SessionParticipation {
	return predicate.SessionParticipation(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, UserTable, UserColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasUserWith applies the HasEdge predicate on the "user" edge with a given conditions (other predicates).
func HasUserWith(preds ...predicate.User) predicate.SessionParticipation {
	return predicate.SessionParticipation(func(s *sql.Selector) {
		step := newUserStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasEnrolledBy applies the HasEdge predicate on the "enrolled_by" edge.
func HasEnrolledBy() predicate.SessionParticipation {
	return predicate.SessionParticipation(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, false, EnrolledByTable, EnrolledByColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasEnrolledByWith applies the HasEdge predicate on the "enrolled_by" edge with a given conditions (other predicates).
func HasEnrolledByWith(preds ...predicate.User) predicate.SessionParticipation {
	return predicate.SessionParticipation(func(s *sql.Selector) {
		step := newEnrolledByStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.SessionParticipation) predicate.SessionParticipation {
	return predicate.SessionParticipation(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.SessionParticipation) predicate.SessionParticipation {
	return predicate.SessionParticipation(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.SessionParticipation) predicate.SessionParticipation {
	return predicate.SessionParticipation(sql.NotPredicates(p))
}
