// Code generated by ent, DO NOT EDIT.

package event

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"ludamus.io/enrolld/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int64) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int64) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int64) predicate.Event {
	return predicate.Event(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int64) predicate.Event {
	return predicate.Event(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int64) predicate.Event {
	return predicate.Event(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int64) predicate.Event {
	return predicate.Event(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int64) predicate.Event {
	return predicate.Event(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int64) predicate.Event {
	return predicate.Event(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int64) predicate.Event {
	return predicate.Event(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldUpdatedAt, v))
}

// SphereID applies equality check predicate on the "sphere_id" field. It's identical to SphereIDEQ.
func SphereID(v int64) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldSphereID, v))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldName, v))
}

// Slug applies equality check predicate on the "slug" field. It's identical to SlugEQ.
func Slug(v string) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldSlug, v))
}

// StartTime applies equality check predicate on the "start_time" field. It's identical to StartTimeEQ.
func StartTime(v time.Time) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldStartTime, v))
}

// EndTime applies equality check predicate on the "end_time" field. It's identical to EndTimeEQ.
func EndTime(v time.Time) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldEndTime, v))
}

// ProposalStartTime applies equality check predicate on the "proposal_start_time" field. It's identical to ProposalStartTimeEQ.
func ProposalStartTime(v time.Time) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldProposalStartTime, v))
}

// ProposalEndTime applies equality check predicate on the "proposal_end_time" field. It's identical to ProposalEndTimeEQ.
func ProposalEndTime(v time.Time) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldProposalEndTime, v))
}

// PublicationTime applies equality check predicate on the "publication_time" field. It's identical to PublicationTimeEQ.
func PublicationTime(v time.Time) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldPublicationTime, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Event {
	return predicate.Event(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Event {
	return predicate.Event(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Event {
	return predicate.Event(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Event {
	return predicate.Event(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Event {
	return predicate.Event(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Event {
	return predicate.Event(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Event {
	return predicate.Event(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Event {
	return predicate.Event(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Event {
	return predicate.Event(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Event {
	return predicate.Event(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Event {
	return predicate.Event(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Event {
	return predicate.Event(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Event {
	return predicate.Event(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Event {
	return predicate.Event(sql.FieldLTE(FieldUpdatedAt, v))
}

// SphereIDEQ applies the EQ predicate on the "sphere_id" field.
func SphereIDEQ(v int64) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldSphereID, v))
}

// SphereIDNEQ applies the NEQ predicate on the "sphere_id" field.
func SphereIDNEQ(v int64) predicate.Event {
	return predicate.Event(sql.FieldNEQ(FieldSphereID, v))
}

// SphereIDIn applies the In predicate on the "sphere_id" field.
func SphereIDIn(vs ...int64) predicate.Event {
	return predicate.Event(sql.FieldIn(FieldSphereID, vs...))
}

// SphereIDNotIn applies the NotIn predicate on the "sphere_id" field.
func SphereIDNotIn(vs ...int64) predicate.Event {
	return predicate.Event(sql.FieldNotIn(FieldSphereID, vs...))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.Event {
	return predicate.Event(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.Event {
	return predicate.Event(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.Event {
	return predicate.Event(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.Event {
	return predicate.Event(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.Event {
	return predicate.Event(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.Event {
	return predicate.Event(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.Event {
	return predicate.Event(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.Event {
	return predicate.Event(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.Event {
	return predicate.Event(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.Event {
	return predicate.Event(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.Event {
	return predicate.Event(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.Event {
	return predicate.Event(sql.FieldContainsFold(FieldName, v))
}

// SlugEQ applies the EQ predicate on the "slug" field.
func SlugEQ(v string) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldSlug, v))
}

// SlugNEQ applies the NEQ predicate on the "slug" field.
func SlugNEQ(v string) predicate.Event {
	return predicate.Event(sql.FieldNEQ(FieldSlug, v))
}

// SlugIn applies the In predicate on the "slug" field.
func SlugIn(vs ...string) predicate.Event {
	return predicate.Event(sql.FieldIn(FieldSlug, vs...))
}

// SlugNotIn applies the NotIn predicate on the "slug" field.
func SlugNotIn(vs ...string) predicate.Event {
	return predicate.Event(sql.FieldNotIn(FieldSlug, vs...))
}

// SlugGT applies the GT predicate on the "slug" field.
func SlugGT(v string) predicate.Event {
	return predicate.Event(sql.FieldGT(FieldSlug, v))
}

// SlugGTE applies the GTE predicate on the "slug" field.
func SlugGTE(v string) predicate.Event {
	return predicate.Event(sql.FieldGTE(FieldSlug, v))
}

// SlugLT applies the LT predicate on the "slug" field.
func SlugLT(v string) predicate.Event {
	return predicate.Event(sql.FieldLT(FieldSlug, v))
}

// SlugLTE applies the LTE predicate on the "slug" field.
func SlugLTE(v string) predicate.Event {
	return predicate.Event(sql.FieldLTE(FieldSlug, v))
}

// SlugContains applies the Contains predicate on the "slug" field.
func SlugContains(v string) predicate.Event {
	return predicate.Event(sql.FieldContains(FieldSlug, v))
}

// SlugHasPrefix applies the HasPrefix predicate on the "slug" field.
func SlugHasPrefix(v string) predicate.Event {
	return predicate.Event(sql.FieldHasPrefix(FieldSlug, v))
}

// SlugHasSuffix applies the HasSuffix predicate on the "slug" field.
func SlugHasSuffix(v string) predicate.Event {
	return predicate.Event(sql.FieldHasSuffix(FieldSlug, v))
}

// SlugEqualFold applies the EqualFold predicate on the "slug" field.
func SlugEqualFold(v string) predicate.Event {
	return predicate.Event(sql.FieldEqualFold(FieldSlug, v))
}

// SlugContainsFold applies the ContainsFold predicate on the "slug" field.
func SlugContainsFold(v string) predicate.Event {
	return predicate.Event(sql.FieldContainsFold(FieldSlug, v))
}

// StartTimeEQ applies the EQ predicate on the "start_time" field.
func StartTimeEQ(v time.Time) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldStartTime, v))
}

// StartTimeNEQ applies the NEQ predicate on the "start_time" field.
func StartTimeNEQ(v time.Time) predicate.Event {
	return predicate.Event(sql.FieldNEQ(FieldStartTime, v))
}

// StartTimeIn applies the In predicate on the "start_time" field.
func StartTimeIn(vs ...time.Time) predicate.Event {
	return predicate.Event(sql.FieldIn(FieldStartTime, vs...))
}

// StartTimeNotIn applies the NotIn predicate on the "start_time" field.
func StartTimeNotIn(vs ...time.Time) predicate.Event {
	return predicate.Event(sql.FieldNotIn(FieldStartTime, vs...))
}

// StartTimeGT applies the GT predicate on the "start_time" field.
func StartTimeGT(v time.Time) predicate.Event {
	return predicate.Event(sql.FieldGT(FieldStartTime, v))
}

// StartTimeGTE applies the GTE predicate on the "start_time" field.
func StartTimeGTE(v time.Time) predicate.Event {
	return predicate.Event(sql.FieldGTE(FieldStartTime, v))
}

// StartTimeLT applies the LT predicate on the "start_time" field.
func StartTimeLT(v time.Time) predicate.Event {
	return predicate.Event(sql.FieldLT(FieldStartTime, v))
}

// StartTimeLTE applies the LTE predicate on the "start_time" field.
func StartTimeLTE(v time.Time) predicate.Event {
	return predicate.Event(sql.FieldLTE(FieldStartTime, v))
}

// EndTimeEQ applies the EQ predicate on the "end_time" field.
func EndTimeEQ(v time.Time) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldEndTime, v))
}

// EndTimeNEQ applies the NEQ predicate on the "end_time" field.
func EndTimeNEQ(v time.Time) predicate.Event {
	return predicate.Event(sql.FieldNEQ(FieldEndTime, v))
}

// EndTimeIn applies the In predicate on the "end_time" field.
func EndTimeIn(vs ...time.Time) predicate.Event {
	return predicate.Event(sql.FieldIn(FieldEndTime, vs...))
}

// EndTimeNotIn applies the NotIn predicate on the "end_time" field.
func EndTimeNotIn(vs ...time.Time) predicate.Event {
	return predicate.Event(sql.FieldNotIn(FieldEndTime, vs...))
}

// EndTimeGT applies the GT predicate on the "end_time" field.
func EndTimeGT(v time.Time) predicate.Event {
	return predicate.Event(sql.FieldGT(FieldEndTime, v))
}

// EndTimeGTE applies the GTE predicate on the "end_time" field.
func EndTimeGTE(v time.Time) predicate.Event {
	return predicate.Event(sql.FieldGTE(FieldEndTime, v))
}

// EndTimeLT applies the LT predicate on the "end_time" field.
func EndTimeLT(v time.Time) predicate.Event {
	return predicate.Event(sql.FieldLT(FieldEndTime, v))
}

// EndTimeLTE applies the LTE predicate on the "end_time" field.
func EndTimeLTE(v time.Time) predicate.Event {
	return predicate.Event(sql.FieldLTE(FieldEndTime, v))
}

// ProposalStartTimeEQ applies the EQ predicate on the "proposal_start_time" field.
func ProposalStartTimeEQ(v time.Time) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldProposalStartTime, v))
}

// ProposalStartTimeNEQ applies the NEQ predicate on the "proposal_start_time" field.
func ProposalStartTimeNEQ(v time.Time) predicate.Event {
	return predicate.Event(sql.FieldNEQ(FieldProposalStartTime, v))
}

// ProposalStartTimeIn applies the In predicate on the "proposal_start_time" field.
func ProposalStartTimeIn(vs ...time.Time) predicate.Event {
	return predicate.Event(sql.FieldIn(FieldProposalStartTime, vs...))
}

// ProposalStartTimeNotIn applies the NotIn predicate on the "proposal_start_time" field.
func ProposalStartTimeNotIn(vs ...time.Time) predicate.Event {
	return predicate.Event(sql.FieldNotIn(FieldProposalStartTime, vs...))
}

// ProposalStartTimeGT applies the GT predicate on the "proposal_start_time" field.
func ProposalStartTimeGT(v time.Time) predicate.Event {
	return predicate.Event(sql.FieldGT(FieldProposalStartTime, v))
}

// ProposalStartTimeGTE applies the GTE predicate on the "proposal_start_time" field.
func ProposalStartTimeGTE(v time.Time) predicate.Event {
	return predicate.Event(sql.FieldGTE(FieldProposalStartTime, v))
}

// ProposalStartTimeLT applies the LT predicate on the "proposal_start_time" field.
func ProposalStartTimeLT(v time.Time) predicate.Event {
	return predicate.Event(sql.FieldLT(FieldProposalStartTime, v))
}

// ProposalStartTimeLTE applies the LTE predicate on the "proposal_start_time" field.
func ProposalStartTimeLTE(v time.Time) predicate.Event {
	return predicate.Event(sql.FieldLTE(FieldProposalStartTime, v))
}

// ProposalStartTimeIsNil applies the IsNil predicate on the "proposal_start_time" field.
func ProposalStartTimeIsNil() predicate.Event {
	return predicate.Event(sql.FieldIsNull(FieldProposalStartTime))
}

// ProposalStartTimeNotNil applies the NotNil predicate on the "proposal_start_time" field.
func ProposalStartTimeNotNil() predicate.Event {
	return predicate.Event(sql.FieldNotNull(FieldProposalStartTime))
}

// ProposalEndTimeEQ applies the EQ predicate on the "proposal_end_time" field.
func ProposalEndTimeEQ(v time.Time) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldProposalEndTime, v))
}

// ProposalEndTimeNEQ applies the NEQ predicate on the "proposal_end_time" field.
func ProposalEndTimeNEQ(v time.Time) predicate.Event {
	return predicate.Event(sql.FieldNEQ(FieldProposalEndTime, v))
}

// ProposalEndTimeIn applies the In predicate on the "proposal_end_time" field.
func ProposalEndTimeIn(vs ...time.Time) predicate.Event {
	return predicate.Event(sql.FieldIn(FieldProposalEndTime, vs...))
}

// ProposalEndTimeNotIn applies the NotIn predicate on the "proposal_end_time" field.
func ProposalEndTimeNotIn(vs ...time.Time) predicate.Event {
	return predicate.Event(sql.FieldNotIn(FieldProposalEndTime, vs...))
}

// ProposalEndTimeGT applies the GT predicate on the "proposal_end_time" field.
func ProposalEndTimeGT(v time.Time) predicate.Event {
	return predicate.Event(sql.FieldGT(FieldProposalEndTime, v))
}

// ProposalEndTimeGTE applies the GTE predicate on the "proposal_end_time" field.
func ProposalEndTimeGTE(v time.Time) predicate.Event {
	return predicate.Event(sql.FieldGTE(FieldProposalEndTime, v))
}

// ProposalEndTimeLT applies the LT predicate on the "proposal_end_time" field.
func ProposalEndTimeLT(v time.Time) predicate.Event {
	return predicate.Event(sql.FieldLT(FieldProposalEndTime, v))
}

// ProposalEndTimeLTE applies the LTE predicate on the "proposal_end_time" field.
func ProposalEndTimeLTE(v time.Time) predicate.Event {
	return predicate.Event(sql.FieldLTE(FieldProposalEndTime, v))
}

// ProposalEndTimeIsNil applies the IsNil predicate on the "proposal_end_time" field.
func ProposalEndTimeIsNil() predicate.Event {
	return predicate.Event(sql.FieldIsNull(FieldProposalEndTime))
}

// ProposalEndTimeNotNil applies the NotNil predicate on the "proposal_end_time" field.
func ProposalEndTimeNotNil() predicate.Event {
	return predicate.Event(sql.FieldNotNull(FieldProposalEndTime))
}

// PublicationTimeEQ applies the EQ predicate on the "publication_time" field.
func PublicationTimeEQ(v time.Time) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldPublicationTime, v))
}

// PublicationTimeNEQ applies the NEQ predicate on the "publication_time" field.
func PublicationTimeNEQ(v time.Time) predicate.Event {
	return predicate.Event(sql.FieldNEQ(FieldPublicationTime, v))
}

// PublicationTimeIn applies the In predicate on the "publication_time" field.
func PublicationTimeIn(vs ...time.Time) predicate.Event {
	return predicate.Event(sql.FieldIn(FieldPublicationTime, vs...))
}

// PublicationTimeNotIn applies the NotIn predicate on the "publication_time" field.
func PublicationTimeNotIn(vs ...time.Time) predicate.Event {
	return predicate.Event(sql.FieldNotIn(FieldPublicationTime, vs...))
}

// PublicationTimeGT applies the GT predicate on the "publication_time" field.
func PublicationTimeGT(v time.Time) predicate.Event {
	return predicate.Event(sql.FieldGT(FieldPublicationTime, v))
}

// PublicationTimeGTE applies the GTE predicate on the "publication_time" field.
func PublicationTimeGTE(v time.Time) predicate.Event {
	return predicate.Event(sql.FieldGTE(FieldPublicationTime, v))
}

// PublicationTimeLT applies the LT predicate on the "publication_time" field.
func PublicationTimeLT(v time.Time) predicate.Event {
	return predicate.Event(sql.FieldLT(FieldPublicationTime, v))
}

// PublicationTimeLTE applies the LTE predicate on the "publication_time" field.
func PublicationTimeLTE(v time.Time) predicate.Event {
	return predicate.Event(sql.FieldLTE(FieldPublicationTime, v))
}

// PublicationTimeIsNil applies the IsNil predicate on the "publication_time" field.
func PublicationTimeIsNil() predicate.Event {
	return predicate.Event(sql.FieldIsNull(FieldPublicationTime))
}

// PublicationTimeNotNil applies the NotNil predicate on the "publication_time" field.
func PublicationTimeNotNil() predicate.Event {
	return predicate.Event(sql.FieldNotNull(FieldPublicationTime))
}

// HasSphere applies the HasEdge predicate on the "sphere" edge.
func HasSphere() predicate.Event {
	return predicate.Event(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, SphereTable, SphereColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasSphereWith applies the HasEdge predicate on the "sphere" edge with a given conditions (other predicates).
func HasSphereWith(preds ...predicate.Sphere) predicate.Event {
	return predicate.Event(func(s *sql.Selector) {
		step := newSphereStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasSpaces applies the HasEdge predicate on the "spaces" edge.
func HasSpaces() predicate.Event {
	return predicate.Event(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, SpacesTable, SpacesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasSpacesWith applies the HasEdge predicate on the "spaces" edge with a given conditions (other predicates).
func HasSpacesWith(preds ...predicate.Space) predicate.Event {
	return predicate.Event(func(s *sql.Selector) {
		step := newSpacesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasSessions applies the HasEdge predicate on the "sessions" edge.
func HasSessions() predicate.Event {
	return predicate.Event(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, SessionsTable, SessionsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasSessionsWith applies the HasEdge predicate on the "sessions" edge with a given conditions (other predicates).
func HasSessionsWith(preds ...predicate.Session) predicate.Event {
	return predicate.Event(func(s *sql.Selector) {
		step := newSessionsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasEnrollmentConfigs applies the HasEdge predicate on the "enrollment_configs" edge.
func HasEnrollmentConfigs() predicate.Event {
	return predicate.Event(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, EnrollmentConfigsTable, EnrollmentConfigsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasEnrollmentConfigsWith applies the HasEdge predicate on the "enrollment_configs" edge with a given conditions (other predicates).
func HasEnrollmentConfigsWith(preds ...predicate.EnrollmentConfig) predicate.Event {
	return predicate.Event(func(s *sql.Selector) {
		step := newEnrollmentConfigsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Event) predicate.Event {
	return predicate.Event(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Event) predicate.Event {
	return predicate.Event(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Event) predicate.Event {
	return predicate.Event(sql.NotPredicates(p))
}
